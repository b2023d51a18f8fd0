package entity

import "time"

// Cliente cliente del negocio. Puede venir embebido dentro de un documento
// de venta (relación expandida) o referenciado solo por clienteId.
type Cliente struct {
	ID       string    `bson:"_id,omitempty" json:"id"`
	Nombre   string    `bson:"nombre" json:"nombre"`
	Ciudad   string    `bson:"ciudad,omitempty" json:"ciudad,omitempty"`
	Telefono string    `bson:"telefono,omitempty" json:"telefono,omitempty"`
	CreadoEn time.Time `bson:"creadoEn" json:"creadoEn"`
}
