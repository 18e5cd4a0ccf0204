package report

import (
	"github.com/concresys/concresys/internal/models"
)

// Row is one export line: a pour joined with the display names of every
// referenced registry entity. Dangling references degrade to the
// original system's placeholder labels instead of failing.
type Row struct {
	Date         string  `json:"Data"` // DD/MM/YYYY
	Invoice      string  `json:"NF"`
	Location     string  `json:"Local"`
	CostCenter   string  `json:"CentroCusto"`
	Supplier     string  `json:"Fornecedor"`
	ConcreteType string  `json:"Traco"`
	Device       string  `json:"Dispositivo"` // "type (ua)" or "-"
	DeviceUA     string  `json:"-"`
	Volume       float64 `json:"Volume_m3"`
	Truck        string  `json:"Caminhao"`
	Notes        string  `json:"Observacoes"`
}

// Headers are the spreadsheet column titles, in Row field order.
var Headers = []string{
	"Data", "NF", "Local", "CentroCusto", "Fornecedor",
	"Traco", "Dispositivo", "Volume_m3", "Caminhao", "Observacoes",
}

// Enrich materializes the enriched projection of the filtered set.
func Enrich(pours []models.PourRecord, snap Lookup) []Row {
	rows := make([]Row, 0, len(pours))
	for _, p := range pours {
		row := Row{
			Date:         FormatDate(p.Date),
			Invoice:      p.InvoiceNumber,
			Location:     "N/A",
			CostCenter:   "N/A",
			Supplier:     "N/A",
			ConcreteType: "N/A",
			Device:       "-",
			DeviceUA:     "-",
			Volume:       p.VolumeDelivered,
			Truck:        orDash(p.TruckID),
			Notes:        p.Notes,
		}
		if loc, ok := snap.Location(p.LocationID); ok {
			row.Location = loc.Name
			row.CostCenter = loc.CostCenter
		}
		if sup, ok := snap.Supplier(p.SupplierID); ok {
			row.Supplier = sup.Name
		}
		if ct, ok := snap.ConcreteType(p.ConcreteTypeID); ok {
			row.ConcreteType = ct.Name
		}
		if dev, ok := snap.Device(p.DeviceID); ok {
			row.Device = dev.Type + " (" + dev.UA + ")"
			row.DeviceUA = dev.UA
		}
		rows = append(rows, row)
	}
	return rows
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Lookup resolves foreign keys against the reference registries.
type Lookup struct {
	Locations     []models.Location
	Suppliers     []models.Supplier
	ConcreteTypes []models.ConcreteType
	Devices       []models.Device
}

func (l Lookup) Location(id string) (models.Location, bool) {
	for _, v := range l.Locations {
		if v.ID == id {
			return v, true
		}
	}
	return models.Location{}, false
}

func (l Lookup) Supplier(id string) (models.Supplier, bool) {
	for _, v := range l.Suppliers {
		if v.ID == id {
			return v, true
		}
	}
	return models.Supplier{}, false
}

func (l Lookup) ConcreteType(id string) (models.ConcreteType, bool) {
	for _, v := range l.ConcreteTypes {
		if v.ID == id {
			return v, true
		}
	}
	return models.ConcreteType{}, false
}

func (l Lookup) Device(id string) (models.Device, bool) {
	if id == "" {
		return models.Device{}, false
	}
	for _, v := range l.Devices {
		if v.ID == id {
			return v, true
		}
	}
	return models.Device{}, false
}
