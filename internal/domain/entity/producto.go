package entity

// StockMinimoPorDefecto umbral de alerta cuando el producto no define uno.
const StockMinimoPorDefecto = 5

// Producto referencia de inventario.
type Producto struct {
	ID           string  `bson:"_id,omitempty" json:"id"`
	Nombre       string  `bson:"nombre" json:"nombre"`
	SKU          string  `bson:"sku" json:"sku"`
	Stock        int     `bson:"stock" json:"stock"`
	PrecioCompra float64 `bson:"precioCompra" json:"precioCompra"`
	PrecioVenta  float64 `bson:"precioVenta" json:"precioVenta"`
	StockMinimo  int     `bson:"stockMinimo,omitempty" json:"stockMinimo,omitempty"` // 0 = usar StockMinimoPorDefecto
	Categoria    string  `bson:"categoria,omitempty" json:"categoria,omitempty"`
}

// UmbralStock devuelve el stock mínimo efectivo del producto.
func (p Producto) UmbralStock() int {
	if p.StockMinimo <= 0 {
		return StockMinimoPorDefecto
	}
	return p.StockMinimo
}
