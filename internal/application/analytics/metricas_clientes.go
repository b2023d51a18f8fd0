package analytics

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zonik811/serviadmin-api/internal/application/dto"
	"github.com/zonik811/serviadmin-api/internal/domain/entity"
)

// Etiquetas centinela del reducer de clientes.
const (
	ClienteOcasional  = "Cliente Ocasional"
	CiudadNoRegistrada = "No Registrada"
)

// CalcularMetricasClientes reduce la unión de los documentos de venta del mes
// (las cuatro fuentes juntas) a los rankings de clientes y ciudades.
//
// Identidad del cliente: la relación embebida tiene precedencia sobre el id
// plano; los documentos sin cliente se agrupan bajo "Cliente Ocasional".
// Ciudad: primero el directorio de clientes, luego la ciudad de la relación
// embebida, y "No Registrada" si no hay valor utilizable. Nunca lanza error
// por datos faltantes.
func CalcularMetricasClientes(docs []DocumentoVenta, directorio map[string]entity.Cliente) dto.EstadisticasClientes {
	type acumCliente struct {
		nombre  string
		total   decimal.Decimal
		compras int
	}

	porCliente := make(map[string]*acumCliente)
	ordenClientes := []string{}
	porCiudad := make(map[string]int)
	ordenCiudades := []string{}
	activos := make(map[string]struct{})

	for _, doc := range docs {
		clave := clienteClave(doc)
		nombre := ClienteOcasional
		if ref := doc.ClienteRef(); ref != nil && ref.Nombre != "" {
			nombre = ref.Nombre
		} else if cli, ok := directorio[clave]; ok && cli.Nombre != "" {
			nombre = cli.Nombre
		}
		if clave != "" {
			activos[clave] = struct{}{}
		}

		acum, visto := porCliente[clave]
		if !visto {
			acum = &acumCliente{nombre: nombre, total: decimal.Zero}
			porCliente[clave] = acum
			ordenClientes = append(ordenClientes, clave)
		}
		acum.total = acum.total.Add(doc.Monto())
		acum.compras++

		ciudad := resolverCiudad(doc, directorio)
		if _, vista := porCiudad[ciudad]; !vista {
			ordenCiudades = append(ordenCiudades, ciudad)
		}
		porCiudad[ciudad]++
	}

	sort.SliceStable(ordenClientes, func(i, j int) bool {
		return porCliente[ordenClientes[i]].total.GreaterThan(porCliente[ordenClientes[j]].total)
	})
	if len(ordenClientes) > topN {
		ordenClientes = ordenClientes[:topN]
	}
	topClientes := make([]dto.ClienteTopDTO, 0, len(ordenClientes))
	for _, clave := range ordenClientes {
		acum := porCliente[clave]
		topClientes = append(topClientes, dto.ClienteTopDTO{
			Nombre:       acum.nombre,
			TotalGastado: acum.total,
			Compras:      acum.compras,
		})
	}

	sort.SliceStable(ordenCiudades, func(i, j int) bool {
		return porCiudad[ordenCiudades[i]] > porCiudad[ordenCiudades[j]]
	})
	if len(ordenCiudades) > topN {
		ordenCiudades = ordenCiudades[:topN]
	}
	topCiudades := make([]dto.CiudadTopDTO, 0, len(ordenCiudades))
	for _, ciudad := range ordenCiudades {
		topCiudades = append(topCiudades, dto.CiudadTopDTO{
			Ciudad:        ciudad,
			Transacciones: porCiudad[ciudad],
		})
	}

	return dto.EstadisticasClientes{
		ActivosMes:  len(activos),
		TopClientes: topClientes,
		TopCiudades: topCiudades,
	}
}

// resolverCiudad precedencia: directorio → relación embebida → "No Registrada".
func resolverCiudad(doc DocumentoVenta, directorio map[string]entity.Cliente) string {
	if cli, ok := directorio[clienteClave(doc)]; ok {
		if ciudad := normalizarCiudad(cli.Ciudad); ciudad != "" {
			return ciudad
		}
	}
	if ref := doc.ClienteRef(); ref != nil {
		if ciudad := normalizarCiudad(ref.Ciudad); ciudad != "" {
			return ciudad
		}
	}
	return CiudadNoRegistrada
}

// normalizarCiudad descarta los valores basura que arrastra el sistema
// origen ("N/A", "null", blancos).
func normalizarCiudad(ciudad string) string {
	ciudad = strings.TrimSpace(ciudad)
	switch strings.ToLower(ciudad) {
	case "", "n/a", "null":
		return ""
	}
	return ciudad
}
