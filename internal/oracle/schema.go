package oracle

import "google.golang.org/genai"

// quotationSchema constrains the model's JSON output to the
// QuotationReport shape: fixed enums, required breakdown fields, and
// string lists for scenario pros and cons.
var quotationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"quotations": {
			Type:        genai.TypeArray,
			Description: "Array de las cotizaciones generadas para los Incoterms solicitados.",
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"incoterm": {
						Type:        genai.TypeString,
						Enum:        []string{"EXW", "FOB", "CIF"},
						Description: "El Incoterm de la cotización.",
					},
					"flete": {
						Type:        genai.TypeString,
						Enum:        []string{"Marítimo", "Aéreo", "No Aplica"},
						Description: "El tipo de flete. 'No Aplica' para EXW.",
					},
					"costoTotal": {
						Type:        genai.TypeNumber,
						Description: "El costo total de la exportación en USD para esta opción.",
					},
					"tiempoTransito": {
						Type:        genai.TypeString,
						Description: "El tiempo estimado de tránsito, ej. '15-20 días'.",
					},
					"desgloseCostos": {
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"valorProduccion":         {Type: genai.TypeNumber, Description: "Costo de producción de los bienes."},
							"transporteLocal":         {Type: genai.TypeNumber, Description: "Costo del transporte desde el almacén al puerto/aeropuerto en Perú."},
							"gastosAduanaExportacion": {Type: genai.TypeNumber, Description: "Costos de aduanas y documentación para la exportación."},
							"fleteInternacional":      {Type: genai.TypeNumber, Description: "Costo del flete principal (marítimo o aéreo)."},
							"seguro":                  {Type: genai.TypeNumber, Description: "Costo del seguro de la mercancía (0 si no aplica)."},
						},
						Required: []string{"valorProduccion", "transporteLocal", "gastosAduanaExportacion", "fleteInternacional", "seguro"},
					},
				},
				Required: []string{"incoterm", "flete", "costoTotal", "tiempoTransito", "desgloseCostos"},
			},
		},
		"recommendations": {
			Type:        genai.TypeObject,
			Description: "Recomendaciones estratégicas para la exportación.",
			Properties: map[string]*genai.Schema{
				"seasonal": {
					Type:        genai.TypeString,
					Description: "Consejos sobre las mejores fechas para enviar el producto para optimizar costos.",
				},
				"container": {
					Type:        genai.TypeString,
					Description: "Recomendaciones sobre la optimización de contenedores y si conviene aumentar el volumen.",
				},
				"strategy": {
					Type:        genai.TypeString,
					Description: "Otras estrategias clave para mejorar la eficiencia del envío y la cotización.",
				},
			},
			Required: []string{"seasonal", "container", "strategy"},
		},
		"scenarioAnalysis": {
			Type:        genai.TypeArray,
			Description: "Análisis comparativo de los escenarios de envío (Marítimo, Aéreo, Courier), clasificados por viabilidad y recomendación.",
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"option":              {Type: genai.TypeString, Enum: []string{"Marítimo", "Aéreo", "Courier"}, Description: "El método de envío."},
					"rank":                {Type: genai.TypeNumber, Description: "El ranking de preferencia (1 es el más recomendado)."},
					"isRecommended":       {Type: genai.TypeBoolean, Description: "True si esta es la opción más recomendada."},
					"costoEstimado":       {Type: genai.TypeString, Description: "Rango de costo estimado en USD, ej. '$500 - $700'."},
					"tiempoEstimado":      {Type: genai.TypeString, Description: "Tiempo de tránsito estimado, ej. '5-7 días'."},
					"analisisCualitativo": {Type: genai.TypeString, Description: "Un análisis cualitativo de por qué esta opción es o no es adecuada."},
					"pros":                {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, Description: "Lista de ventajas (2-3 puntos)."},
					"contras":             {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, Description: "Lista de desventajas (2-3 puntos)."},
				},
				Required: []string{"option", "rank", "isRecommended", "costoEstimado", "tiempoEstimado", "analisisCualitativo", "pros", "contras"},
			},
		},
	},
	Required: []string{"quotations", "recommendations", "scenarioAnalysis"},
}
