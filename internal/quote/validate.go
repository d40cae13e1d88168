package quote

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

// MsgIncotermRequired is returned before anything else when no trade term
// is selected; in that case the oracle must never be called.
const MsgIncotermRequired = "Por favor, selecciona al menos un Incoterm para cotizar."

var (
	rucPattern    = regexp.MustCompile(`^\d{11}$`)
	emailPattern  = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	tariffPattern = regexp.MustCompile(`^\d{4}\.\d{2}\.\d{2}\.\d{2}$`)
)

// ValidTariffCode reports whether code matches the XXXX.XX.XX.XX shape.
// Shared with the tariff lookup, which re-checks oracle answers.
func ValidTariffCode(code string) bool {
	return tariffPattern.MatchString(code)
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator instance with the custom ruc,
// emailshape, and tariffcode rules registered. Other packages validating
// structs that embed ShipmentRequest must use this instance.
func Validator() *validator.Validate {
	return formValidator()
}

func formValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("ruc", func(fl validator.FieldLevel) bool {
			return rucPattern.MatchString(fl.Field().String())
		})
		_ = validate.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
			return emailPattern.MatchString(fl.Field().String())
		})
		_ = validate.RegisterValidation("tariffcode", func(fl validator.FieldLevel) bool {
			return tariffPattern.MatchString(fl.Field().String())
		})
	})
	return validate
}

// fieldMessages maps struct field and failing tag to the message shown
// next to the form field. Format messages win over "required" whenever a
// value is present because the required tag passes in that case.
var fieldMessages = map[string]map[string]string{
	"Product":            {"required": "El producto es requerido."},
	"TariffCode":         {"required": "Formato incorrecto. Debe ser XXXX.XX.XX.XX", "tariffcode": "Formato incorrecto. Debe ser XXXX.XX.XX.XX"},
	"DestinationCountry": {"required": "El país de destino es requerido."},
	"Quantity":           {"gt": "La cantidad debe ser mayor a cero."},
	"QuantityUnit":       {"required": "La unidad es requerida.", "oneof": "Unidad no válida."},
	"ProductionValue":    {"gte": "El valor de producción no puede ser negativo."},
	"Incoterms":          {"oneof": "Incoterm no válido."},
	"Empresa":            {"required": "El nombre de la empresa es requerido."},
	"RUC":                {"required": "El RUC es requerido.", "ruc": "El RUC debe contener 11 dígitos."},
	"Direccion":          {"required": "La dirección es requerida."},
	"Correo":             {"required": "El correo electrónico es requerido.", "emailshape": "Formato de correo inválido."},
}

// jsonFieldNames translates struct fields to the wire names the client
// keys its inline errors by.
var jsonFieldNames = map[string]string{
	"Product":            "product",
	"TariffCode":         "tariffCode",
	"DestinationCountry": "destinationCountry",
	"Quantity":           "quantity",
	"QuantityUnit":       "quantityUnit",
	"ProductionValue":    "productionValue",
	"Incoterms":          "incoterms",
	"Empresa":            "empresa",
	"RUC":                "ruc",
	"Direccion":          "direccion",
	"Correo":             "correo",
}

// ValidateShipmentRequest normalizes req and returns field-keyed messages,
// empty when the request is valid. The incoterm precondition is not part
// of this map; callers check it first via RequireIncoterms.
func ValidateShipmentRequest(req *ShipmentRequest) map[string]string {
	req.Normalize()
	errs := make(map[string]string)
	err := formValidator().Struct(req)
	if err == nil {
		return errs
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["formData"] = "Solicitud inválida."
		return errs
	}
	for _, fe := range verrs {
		field := fe.StructField()
		name, ok := jsonFieldNames[field]
		if !ok {
			name = field
		}
		if _, seen := errs[name]; seen {
			continue
		}
		if msg, ok := fieldMessages[field][fe.Tag()]; ok {
			errs[name] = msg
			continue
		}
		errs[name] = "Valor inválido."
	}
	return errs
}

// RequireIncoterms enforces the submission precondition: at least one
// trade term must be selected.
func RequireIncoterms(req *ShipmentRequest) bool {
	return len(req.Incoterms) > 0
}
