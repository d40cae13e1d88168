package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() ShipmentRequest {
	return ShipmentRequest{
		Product:            "Palta Hass",
		TariffCode:         "0804.40.00.00",
		DestinationCountry: "España",
		Quantity:           2,
		QuantityUnit:       UnitTonnes,
		ProductionValue:    4000,
		Incoterms:          []Incoterm{IncotermFOB, IncotermCIF},
		Empresa:            "Agroexportadora Andina SAC",
		RUC:                "20123456789",
		Direccion:          "Av. Los Incas 123, Lima",
		Correo:             "ventas@andina.pe",
	}
}

func TestValidateShipmentRequestValid(t *testing.T) {
	req := validRequest()
	errs := ValidateShipmentRequest(&req)
	assert.Empty(t, errs)
}

func TestValidateShipmentRequestMissingFields(t *testing.T) {
	req := validRequest()
	req.Empresa = "   "
	req.RUC = ""
	req.Direccion = ""
	req.Correo = ""

	errs := ValidateShipmentRequest(&req)
	require.Len(t, errs, 4)
	assert.Equal(t, "El nombre de la empresa es requerido.", errs["empresa"])
	assert.Equal(t, "El RUC es requerido.", errs["ruc"])
	assert.Equal(t, "La dirección es requerida.", errs["direccion"])
	assert.Equal(t, "El correo electrónico es requerido.", errs["correo"])
}

func TestValidateRUCFormatOverridesRequired(t *testing.T) {
	req := validRequest()
	req.RUC = "2012345678" // 10 digits

	errs := ValidateShipmentRequest(&req)
	require.Contains(t, errs, "ruc")
	assert.Equal(t, "El RUC debe contener 11 dígitos.", errs["ruc"])
}

func TestValidateEmailShape(t *testing.T) {
	req := validRequest()
	req.Correo = "no-es-un-correo"

	errs := ValidateShipmentRequest(&req)
	require.Contains(t, errs, "correo")
	assert.Equal(t, "Formato de correo inválido.", errs["correo"])
}

func TestValidateTariffCodeFormats(t *testing.T) {
	cases := []struct {
		code  string
		valid bool
	}{
		{"0804.40.00.00", true},
		{"0804.40.0.00", false},
		{"0804.40.00", false},
		{"ABCD.40.00.00", false},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			assert.Equal(t, tc.valid, ValidTariffCode(tc.code))

			req := validRequest()
			req.TariffCode = tc.code
			errs := ValidateShipmentRequest(&req)
			if tc.valid {
				assert.NotContains(t, errs, "tariffCode")
			} else {
				assert.Equal(t, "Formato incorrecto. Debe ser XXXX.XX.XX.XX", errs["tariffCode"])
			}
		})
	}
}

func TestValidateTrimsBeforeChecking(t *testing.T) {
	req := validRequest()
	req.RUC = " 20123456789 "
	req.Correo = "  ventas@andina.pe  "

	errs := ValidateShipmentRequest(&req)
	assert.Empty(t, errs)
	assert.Equal(t, "20123456789", req.RUC)
}

func TestRequireIncoterms(t *testing.T) {
	req := validRequest()
	assert.True(t, RequireIncoterms(&req))

	req.Incoterms = nil
	assert.False(t, RequireIncoterms(&req))
}
