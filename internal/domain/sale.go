package domain

import (
	"math"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cast"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "efectivo"
	PaymentMethodTransfer PaymentMethod = "transferencia"
)

// NormalizePaymentMethod aceita as grafias gravadas pelo aplicativo (efectivo/transferencia)
// e os sinônimos em inglês, sem diferenciar maiúsculas. Valores desconhecidos retornam "".
func NormalizePaymentMethod(raw string) PaymentMethod {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "efectivo", "cash":
		return PaymentMethodCash
	case "transferencia", "transfer":
		return PaymentMethodTransfer
	default:
		return ""
	}
}

// Price guarda o valor bruto do documento. O aplicativo móvel grava o preço às vezes como
// número, às vezes como texto.
type Price struct {
	raw any
}

func NewPrice(raw any) Price {
	return Price{raw: raw}
}

// Amount aplica a regra de coerção: tipos numéricos são usados como estão, textos são
// convertidos e qualquer valor inválido (NaN, infinito, texto não numérico, bool, ausente) vale 0.
func (p Price) Amount() float64 {
	var (
		value float64
		err   error
	)

	switch v := p.raw.(type) {
	case nil, bool:
		return 0
	case string:
		value, err = cast.ToFloat64E(strings.TrimSpace(v))
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		value, err = cast.ToFloat64E(v)
	default:
		return 0
	}

	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}

	return value
}

// Raw retorna o valor original, útil para exibir o documento sem alterações
func (p Price) Raw() any {
	return p.raw
}

func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.raw)
}

func (p *Price) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		// Valores impossíveis de decodificar não invalidam o registro inteiro
		p.raw = nil
		return nil
	}
	p.raw = raw
	return nil
}

// SaleRecord é um registro do histórico de vendas de passagens. As tags JSON seguem as chaves
// gravadas no documento; campos ausentes ficam vazios.
type SaleRecord struct {
	ID            string `json:"id,omitempty"`
	RouteName     string `json:"paradaNombre,omitempty"`
	DepartureDate string `json:"fechaSalida,omitempty"`
	DepartureTime string `json:"horaSalida,omitempty"`
	PaymentMethod string `json:"metodoPago,omitempty"`
	VehicleID     string `json:"numeroBus,omitempty"`
	Price         Price  `json:"precio"`
	Passenger     string `json:"pasajero,omitempty"`
	Seat          any    `json:"asiento,omitempty"`
}

// LenientString aceita texto ou número no documento. Números são formatados como texto;
// qualquer outro tipo (bool, objeto, lista, null) vira "".
type LenientString string

func (l *LenientString) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		*l = ""
		return nil
	}

	switch v := raw.(type) {
	case string:
		*l = LenientString(v)
	case float64:
		text, err := cast.ToStringE(v)
		if err != nil {
			text = ""
		}
		*l = LenientString(text)
	default:
		*l = ""
	}
	return nil
}

// saleDocument é a forma gravada do registro, com campos de texto tolerantes a tipo
type saleDocument struct {
	ID            LenientString `json:"id"`
	RouteName     LenientString `json:"paradaNombre"`
	DepartureDate LenientString `json:"fechaSalida"`
	DepartureTime LenientString `json:"horaSalida"`
	PaymentMethod LenientString `json:"metodoPago"`
	VehicleID     LenientString `json:"numeroBus"`
	Price         Price         `json:"precio"`
	Passenger     LenientString `json:"pasajero"`
	Seat          any           `json:"asiento"`
}

// UnmarshalJSON nunca rejeita o registro por causa do tipo de um campo; o campo afetado fica
// vazio e só sai do agrupamento correspondente.
func (s *SaleRecord) UnmarshalJSON(data []byte) error {
	var doc saleDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	*s = SaleRecord{
		ID:            string(doc.ID),
		RouteName:     string(doc.RouteName),
		DepartureDate: string(doc.DepartureDate),
		DepartureTime: string(doc.DepartureTime),
		PaymentMethod: string(doc.PaymentMethod),
		VehicleID:     string(doc.VehicleID),
		Price:         doc.Price,
		Passenger:     string(doc.Passenger),
		Seat:          doc.Seat,
	}
	return nil
}

// Date interpreta a data de saída no formato YYYY-MM-DD
func (s SaleRecord) Date() (time.Time, bool) {
	date, err := time.Parse(time.DateOnly, strings.TrimSpace(s.DepartureDate))
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

// HistoryFilters representa os filtros aceitos pelas consultas ao histórico
type HistoryFilters struct {
	VehicleID     string
	Month         string // YYYY-MM
	Date          string // YYYY-MM-DD
	StartDate     *time.Time
	EndDate       *time.Time
	PaymentMethod PaymentMethod
	Search        string
}

func (f HistoryFilters) IsEmpty() bool {
	return f.VehicleID == "" && f.Month == "" && f.Date == "" && f.StartDate == nil &&
		f.EndDate == nil && f.PaymentMethod == "" && f.Search == ""
}

type Pagination struct {
	Limit  int
	Offset int
}

type HistoryPage struct {
	Records []SaleRecord `json:"records"`
	Total   int          `json:"total"`
	Limit   int          `json:"limit"`
	Offset  int          `json:"offset"`
}
