// Package registry holds the in-memory session state of the application:
// one ordered sequence per entity collection, loaded in full from the
// persistence gateway and mutated optimistically after each successful
// write. Local state reflects the last operation this process issued; it
// is not guaranteed consistent with concurrent external writers until
// the next full reload.
package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/concresys/concresys/internal/models"
	"github.com/concresys/concresys/internal/store"
)

// Registry is the session store. The original UI mutated its state from
// a single thread; HTTP handlers are concurrent, so access goes through
// an RWMutex.
type Registry struct {
	mu sync.RWMutex
	st *store.Store

	pours         []models.PourRecord
	suppliers     []models.Supplier
	locations     []models.Location
	concreteTypes []models.ConcreteType
	devices       []models.Device
	inputs        []models.Input
}

// Snapshot is a point-in-time copy of every collection, safe to read
// without holding the registry lock.
type Snapshot struct {
	Pours         []models.PourRecord
	Suppliers     []models.Supplier
	Locations     []models.Location
	ConcreteTypes []models.ConcreteType
	Devices       []models.Device
	Inputs        []models.Input
}

// New creates an empty registry over the given gateway.
func New(st *store.Store) *Registry {
	return &Registry{st: st}
}

// Load replaces every collection with a full read from the gateway.
// Called once at startup and again after each successful login. Failed
// collection reads come back empty rather than aborting the load.
func (r *Registry) Load() {
	pours := store.ListAll[models.PourRecord](r.st)
	suppliers := store.ListAll[models.Supplier](r.st)
	locations := store.ListAll[models.Location](r.st)
	concreteTypes := store.ListAll[models.ConcreteType](r.st)
	devices := store.ListAll[models.Device](r.st)
	inputs := store.ListAll[models.Input](r.st)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.pours = pours
	r.suppliers = suppliers
	r.locations = locations
	r.concreteTypes = concreteTypes
	r.devices = devices
	r.inputs = inputs
}

// Snapshot returns copies of all collections in their current order.
func (r *Registry) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Snapshot{
		Pours:         append([]models.PourRecord(nil), r.pours...),
		Suppliers:     append([]models.Supplier(nil), r.suppliers...),
		Locations:     append([]models.Location(nil), r.locations...),
		ConcreteTypes: append([]models.ConcreteType(nil), r.concreteTypes...),
		Devices:       append([]models.Device(nil), r.devices...),
		Inputs:        append([]models.Input(nil), r.inputs...),
	}
}

// replaceByID swaps the element with a matching id in place,
// preserving the order of all other elements.
func replaceByID[T models.Keyed](list []T, item T) []T {
	for i := range list {
		if list[i].RecordID() == item.RecordID() {
			list[i] = item
			break
		}
	}
	return list
}

// removeByID filters out the element with the given id, preserving the
// order of the remaining elements.
func removeByID[T models.Keyed](list []T, id string) []T {
	out := list[:0]
	for _, item := range list {
		if item.RecordID() != id {
			out = append(out, item)
		}
	}
	return out
}

// PrependPour puts a freshly created pour at the head of the sequence,
// so store order is most-recent-first.
func (r *Registry) PrependPour(p models.PourRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pours = append([]models.PourRecord{p}, r.pours...)
}

// ReplacePour updates a pour in place after a successful write.
func (r *Registry) ReplacePour(p models.PourRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pours = replaceByID(r.pours, p)
}

// RemovePour drops a pour after a successful delete.
func (r *Registry) RemovePour(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pours = removeByID(r.pours, id)
}

// FindPour returns the pour with the given id, if present.
func (r *Registry) FindPour(id string) (models.PourRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.pours {
		if p.ID == id {
			return p, true
		}
	}
	return models.PourRecord{}, false
}

func (r *Registry) AppendSupplier(s models.Supplier) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.suppliers = append(r.suppliers, s)
}

func (r *Registry) ReplaceSupplier(s models.Supplier) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.suppliers = replaceByID(r.suppliers, s)
}

func (r *Registry) RemoveSupplier(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.suppliers = removeByID(r.suppliers, id)
}

func (r *Registry) AppendLocation(l models.Location) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locations = append(r.locations, l)
}

func (r *Registry) ReplaceLocation(l models.Location) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locations = replaceByID(r.locations, l)
}

func (r *Registry) RemoveLocation(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locations = removeByID(r.locations, id)
}

// HasLocation reports whether a location with the given id exists.
func (r *Registry) HasLocation(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.locations {
		if l.ID == id {
			return true
		}
	}
	return false
}

func (r *Registry) AppendConcreteType(t models.ConcreteType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.concreteTypes = append(r.concreteTypes, t)
}

func (r *Registry) ReplaceConcreteType(t models.ConcreteType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.concreteTypes = replaceByID(r.concreteTypes, t)
}

func (r *Registry) RemoveConcreteType(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.concreteTypes = removeByID(r.concreteTypes, id)
}

func (r *Registry) AppendDevice(d models.Device) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.devices = append(r.devices, d)
}

func (r *Registry) ReplaceDevice(d models.Device) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.devices = replaceByID(r.devices, d)
}

func (r *Registry) RemoveDevice(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.devices = removeByID(r.devices, id)
}

// FindDevice returns the device with the given id, if present.
func (r *Registry) FindDevice(id string) (models.Device, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.devices {
		if d.ID == id {
			return d, true
		}
	}
	return models.Device{}, false
}

// DevicesAt returns the devices assigned to the given location, in
// registry order. Selecting a location narrows the device choice list
// to exactly this set.
func (r *Registry) DevicesAt(locationID string) []models.Device {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Device
	for _, d := range r.devices {
		if d.LocationID == locationID {
			out = append(out, d)
		}
	}
	return out
}

// DevicesSorted returns all devices ordered by owning-location name,
// then by device type, both ascending.
func (r *Registry) DevicesSorted() []models.Device {
	r.mu.RLock()
	names := make(map[string]string, len(r.locations))
	for _, l := range r.locations {
		names[l.ID] = l.Name
	}
	out := append([]models.Device(nil), r.devices...)
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		li, lj := names[out[i].LocationID], names[out[j].LocationID]
		if c := strings.Compare(li, lj); c != 0 {
			return c < 0
		}
		return out[i].Type < out[j].Type
	})
	return out
}

func (r *Registry) AppendInput(i models.Input) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inputs = append(r.inputs, i)
}

func (r *Registry) ReplaceInput(i models.Input) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inputs = replaceByID(r.inputs, i)
}

func (r *Registry) RemoveInput(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inputs = removeByID(r.inputs, id)
}

// FindInput returns the input with the given id, if present.
func (r *Registry) FindInput(id string) (models.Input, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, in := range r.inputs {
		if in.ID == id {
			return in, true
		}
	}
	return models.Input{}, false
}

// InputsSorted returns all material inputs ordered by ascending code.
func (r *Registry) InputsSorted() []models.Input {
	r.mu.RLock()
	out := append([]models.Input(nil), r.inputs...)
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// NextInputCode returns the next sequential material code: the maximum
// existing code plus one, or 1 when no inputs exist. Codes are derived
// here, never taken from the client.
func (r *Registry) NextInputCode() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	max := 0
	for _, in := range r.inputs {
		if in.Code > max {
			max = in.Code
		}
	}
	return max + 1
}
