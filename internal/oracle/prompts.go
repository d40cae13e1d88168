package oracle

import (
	"fmt"
	"strings"

	"github.com/cotizaexport/cotizaexport/internal/document"
	"github.com/cotizaexport/cotizaexport/internal/quote"
)

func quotationPrompt(req quote.ShipmentRequest) string {
	incoterms := make([]string, len(req.Incoterms))
	for i, term := range req.Incoterms {
		incoterms[i] = string(term)
	}
	incotermsString := strings.Join(incoterms, ", ")

	return fmt.Sprintf(`Actúa como un experto consultor en logística de exportación para el sector agroindustrial de Perú.

Datos del Exportador (para referencia en documentos, no para análisis de costos):
- Empresa: %s
- RUC: %s
- Dirección: %s
- Correo: %s

El usuario desea cotizar la exportación del siguiente producto:
- Producto: %s
- Partida Arancelaria: %s
- País de Destino: %s
- Cantidad: %g %s
- Valor de Producción (EXW): %g USD
- Incoterms solicitados: %s

Tu tarea es generar una respuesta JSON estructurada que contenga tres partes principales: 'quotations', 'recommendations' y 'scenarioAnalysis'.

1.  **Quotations**:
    -   Genera un desglose detallado de costos para cada uno de los Incoterms solicitados: %s.
    -   Para FOB y CIF, calcula los costos tanto para flete marítimo como para flete aéreo.
    -   Si se solicita EXW, el flete internacional y el seguro deben ser 0, y el tipo de flete debe ser "No Aplica".
    -   No incluyas cotizaciones para Incoterms que no fueron solicitados.
    -   Usa estimaciones realistas y actualizadas para los costos adicionales en USD (Transporte Local, Aduanas, Flete Internacional, Seguro).
    -   El campo 'costoTotal' debe ser exactamente la suma de los componentes del desglose.
    -   Proporciona un tiempo de tránsito estimado para cada opción de flete.

2.  **Recommendations**:
    -   **seasonal**: Ofrece consejos sobre las mejores fechas o temporadas para enviar %s a %s para encontrar fletes más económicos. Sé específico.
    -   **container**: Analiza la cantidad de %g %s de %s. Recomienda si aumentar la cantidad para llenar un contenedor estándar (20' o 40') sería más rentable. Estima el ahorro potencial en el costo por unidad.
    -   **strategy**: Proporciona otras 2-3 estrategias clave para que el exportador mejore la eficiencia, como la consolidación de carga, elección de navieras, negociación con proveedores logísticos o documentación importante.

3.  **Scenario Analysis**:
    -   Analiza de forma cuantitativa y cualitativa los posibles escenarios de envío para la cantidad especificada (%g %s).
    -   Considera las opciones: Flete Marítimo, Flete Aéreo y Courier.
    -   Para cada opción, evalúa su viabilidad. Por ejemplo, para una cantidad muy pequeña como 10 kg, el flete marítimo no es viable y debes indicarlo en el análisis. Para cantidades grandes, courier no es rentable.
    -   Discierne entre las variables (costo, tiempo, complejidad, tamaño del envío) para determinar la opción más tentativa.
    -   Crea un ranking de las opciones (propiedad 'rank'), donde 1 es la más recomendada. Los rankings deben ser únicos.
    -   Marca explícitamente la opción más recomendada con la propiedad 'isRecommended' como true. Solo una puede ser true.
    -   Proporciona un rango de costo y tiempo estimado para cada escenario viable. Si no es viable, indícalo.
    -   Para cada escenario, escribe un breve análisis cualitativo y lista 2-3 pros y contras clave.

Devuelve tu respuesta únicamente como un objeto JSON válido que se ajuste estrictamente al esquema proporcionado, sin ningún texto, explicación o markdown adicional.`,
		req.Empresa, req.RUC, req.Direccion, req.Correo,
		req.Product, req.TariffCode, req.DestinationCountry,
		req.Quantity, req.QuantityUnit, req.ProductionValue, incotermsString,
		incotermsString,
		req.Product, req.DestinationCountry,
		req.Quantity, req.QuantityUnit, req.Product,
		req.Quantity, req.QuantityUnit,
	)
}

func tariffPrompt(productDescription string) string {
	return fmt.Sprintf(`Actúa como un experto en aduanas de Perú.
Basado en la siguiente descripción de producto, proporciona únicamente la partida arancelaria peruana más probable en el formato XXXX.XX.XX.XX.
No incluyas ninguna explicación, texto adicional, ni markdown. Solo el código.

Descripción del producto: "%s"`, productDescription)
}

func documentPrompt(kind document.Kind, data document.Request) string {
	return fmt.Sprintf(`Actúa como un experto en documentación de comercio internacional. Tu tarea es generar un documento HTML completo y profesional para una '%s'.
El HTML debe ser auto-contenido. Utiliza la CDN de Tailwind CSS para el estilo. Asegúrate de que el diseño sea limpio, moderno y fácil de leer.
El documento debe estar optimizado para impresión (formato A4). Incluye estilos @media print para ocultar botones y mejorar la apariencia de impresión.

Usa los siguientes datos para poblar el documento:
- **Datos del Exportador (Vendedor):**
  - Empresa: %s
  - RUC: %s
  - Dirección: %s
  - Correo: %s

- **Datos del Importador (Comprador):**
  - Empresa: %s
  - ID Fiscal: %s
  - Dirección: %s

- **Detalles del Envío:**
  - Número de Factura/Documento: %s
  - Fecha de Emisión: %s
  - Incoterm: %s (%s)
  - Destino Final: %s

- **Detalles del Producto:**
  - Descripción: %s
  - Partida Arancelaria (HS Code): %s
  - Cantidad: %g %s
  - Valor Total (%s): %g USD

- **Detalles del Empaque:**
  - Número de Bultos: %d
  - Tipo de Empaque: %s
  - Peso Neto Total: %g kg
  - Peso Bruto Total: %g kg
  - Dimensiones: %s

**Instrucciones Específicas para el Documento:**
- **Para la Factura Comercial:**
  - El título principal debe ser "COMMERCIAL INVOICE / FACTURA COMERCIAL".
  - Crea una tabla detallada para el producto que incluya: Descripción, HS Code, Cantidad, Precio Unitario (calculado), y Precio Total. El precio total debe coincidir con %g.
  - Muestra claramente el monto total en letras y números.
  - Incluye un pie de página con espacio para firma y sello.

- **Para el Packing List:**
  - El título principal debe ser "PACKING LIST / LISTA DE EMPAQUE".
  - No debe contener precios.
  - Crea una tabla que detalle el contenido del envío. Incluye: Descripción del Producto, Cantidad de Bultos, Tipo de Empaque, Peso Neto, Peso Bruto, y Dimensiones.
  - Asegúrate de que los totales de bultos, peso neto y peso bruto estén claramente visibles.
  - Incluye un pie de página con espacio para firma y sello.

**Estructura del HTML de Salida:**
- Incluye <!DOCTYPE html>, <html>, <head>, y <body>.
- En el <head>, enlaza a la CDN de Tailwind: <script src="https://cdn.tailwindcss.com"></script>.
- Agrega un botón de "Imprimir" en la esquina superior derecha que se oculte al imprimir. El botón debe ejecutar window.print() al hacer clic.
- Devuelve únicamente el código HTML completo. No incluyas markdown, explicaciones ni ningún otro texto fuera de la estructura HTML.`,
		kind.Title(),
		data.Exporter.Empresa, data.Exporter.RUC, data.Exporter.Direccion, data.Exporter.Correo,
		data.Importer.CompanyName, data.Importer.TaxID, data.Importer.Address,
		data.Shipment.InvoiceNumber, data.Shipment.IssueDate,
		data.Shipment.Incoterm, data.Shipment.FreightType, data.Exporter.DestinationCountry,
		data.Exporter.Product, data.Exporter.TariffCode,
		data.Exporter.Quantity, data.Exporter.QuantityUnit,
		data.Shipment.Incoterm, data.Shipment.TotalValue,
		data.Packaging.PackageCount, data.Packaging.PackageType,
		data.Packaging.NetWeightKg, data.Packaging.GrossWeightKg, data.Packaging.Dimensions,
		data.Shipment.TotalValue,
	)
}
