package report

import (
	"sort"
	"strings"

	"github.com/concresys/concresys/internal/models"
)

// SortKey names a sortable history column.
type SortKey string

const (
	SortByDate     SortKey = "date"
	SortByInvoice  SortKey = "nf"
	SortByLocation SortKey = "location"
	SortBySupplier SortKey = "supplier"
	SortByVolume   SortKey = "volume"
)

// ParseSortKey maps a query parameter to a column, defaulting to date.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortByInvoice, SortByLocation, SortBySupplier, SortByVolume:
		return SortKey(s)
	default:
		return SortByDate
	}
}

// SortPours returns a sorted copy of the history table. Location and
// supplier columns compare by the referenced entity's display name; a
// dangling reference compares as the empty string, so unresolved rows
// cluster together. The sort is stable, and descending order is the
// exact reverse of ascending.
func SortPours(pours []models.PourRecord, key SortKey, desc bool, locations []models.Location, suppliers []models.Supplier) []models.PourRecord {
	locNames := make(map[string]string, len(locations))
	for _, l := range locations {
		locNames[l.ID] = l.Name
	}
	supNames := make(map[string]string, len(suppliers))
	for _, s := range suppliers {
		supNames[s.ID] = s.Name
	}

	stringKey := func(p models.PourRecord) string {
		switch key {
		case SortByInvoice:
			return p.InvoiceNumber
		case SortByLocation:
			return locNames[p.LocationID]
		case SortBySupplier:
			return supNames[p.SupplierID]
		default:
			return p.Date
		}
	}

	out := append([]models.PourRecord(nil), pours...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if desc {
			a, b = b, a
		}
		if key == SortByVolume {
			return a.VolumeDelivered < b.VolumeDelivered
		}
		return strings.Compare(stringKey(a), stringKey(b)) < 0
	})
	return out
}
