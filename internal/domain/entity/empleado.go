package entity

// Tipos de registro de asistencia.
const (
	AsistenciaEntrada = "ENTRADA"
	AsistenciaSalida  = "SALIDA"
)

// Tipos y estado de ausencias programadas.
const (
	PermisoTipoPermiso    = "PERMISO"
	PermisoTipoVacaciones = "VACACIONES"
	PermisoAprobado       = "aprobado"
)

// Empleado miembro de la nómina.
type Empleado struct {
	ID         string  `bson:"_id,omitempty" json:"id"`
	Nombre     string  `bson:"nombre" json:"nombre"`
	Cargo      string  `bson:"cargo" json:"cargo"`
	TarifaHora float64 `bson:"tarifaHora" json:"tarifaHora"`
	Activo     bool    `bson:"activo" json:"activo"`
}

// RegistroAsistencia marcación de entrada o salida de un día.
// Fecha y Hora se guardan por separado como strings ("YYYY-MM-DD" y "HH:MM"),
// igual que en el sistema origen.
type RegistroAsistencia struct {
	ID         string `bson:"_id,omitempty" json:"id"`
	EmpleadoID string `bson:"empleadoId" json:"empleadoId"`
	Fecha      string `bson:"fecha" json:"fecha"` // YYYY-MM-DD
	Hora       string `bson:"hora" json:"hora"`   // HH:MM
	Tipo       string `bson:"tipo" json:"tipo"`   // ENTRADA | SALIDA
}

// Permiso ausencia programada (permiso puntual o vacaciones).
// Se considera vigente cuando está aprobado y su rango cubre el día actual.
type Permiso struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	EmpleadoID  string `bson:"empleadoId" json:"empleadoId"`
	Tipo        string `bson:"tipo" json:"tipo"` // PERMISO | VACACIONES
	FechaInicio string `bson:"fechaInicio" json:"fechaInicio"` // YYYY-MM-DD
	FechaFin    string `bson:"fechaFin" json:"fechaFin"`       // YYYY-MM-DD
	Estado      string `bson:"estado" json:"estado"`
}
