package entity

type FulfillmentPath int

const (
	PathUnassigned FulfillmentPath = iota
	PathVendor
	PathAdmin
)

func (p FulfillmentPath) String() string {
	switch p {
	case PathVendor:
		return "vendor"
	case PathAdmin:
		return "admin"
	default:
		return "unassigned"
	}
}

// VendorAssignment is the vendor-side fulfillment: the dispatching vendor
// plus one of its cabs and drivers.
type VendorAssignment struct {
	VendorID *int64
	CabID    *int64
	DriverID *int64
}

func (v VendorAssignment) Complete() bool {
	return v.CabID != nil && v.DriverID != nil
}

func (v VendorAssignment) empty() bool {
	return v.VendorID == nil && v.CabID == nil && v.DriverID == nil
}

// AdminAssignment is the in-house fulfillment: a cab admin vehicle driven
// by a drive admin.
type AdminAssignment struct {
	CabAdminID   *int64
	DriveAdminID *int64
}

func (a AdminAssignment) Complete() bool {
	return a.CabAdminID != nil && a.DriveAdminID != nil
}

func (a AdminAssignment) empty() bool {
	return a.CabAdminID == nil && a.DriveAdminID == nil
}

// Fulfillment holds at most one active path. The zero value is unassigned.
// Use the Assign* methods to mutate it so the single-path invariant holds.
type Fulfillment struct {
	vendor *VendorAssignment
	admin  *AdminAssignment
}

// NewFulfillment rebuilds a fulfillment from stored columns. When both paths
// carry references the vendor path wins and the admin references are dropped.
func NewFulfillment(vendor VendorAssignment, admin AdminAssignment) Fulfillment {
	switch {
	case !vendor.empty():
		return Fulfillment{vendor: &vendor}
	case !admin.empty():
		return Fulfillment{admin: &admin}
	default:
		return Fulfillment{}
	}
}

func (f Fulfillment) Path() FulfillmentPath {
	switch {
	case f.vendor != nil:
		return PathVendor
	case f.admin != nil:
		return PathAdmin
	default:
		return PathUnassigned
	}
}

// Vendor returns the vendor path, zero valued when another path is active.
func (f Fulfillment) Vendor() VendorAssignment {
	if f.vendor == nil {
		return VendorAssignment{}
	}
	return *f.vendor
}

// Admin returns the admin path, zero valued when another path is active.
func (f Fulfillment) Admin() AdminAssignment {
	if f.admin == nil {
		return AdminAssignment{}
	}
	return *f.admin
}

// PairingComplete reports whether the active path has both a vehicle and a driver.
func (f Fulfillment) PairingComplete() bool {
	switch f.Path() {
	case PathVendor:
		return f.vendor.Complete()
	case PathAdmin:
		return f.admin.Complete()
	default:
		return false
	}
}

// DriverID returns the vendor driver who participates in location exchange.
func (f Fulfillment) DriverID() (int64, bool) {
	if f.vendor == nil || f.vendor.DriverID == nil {
		return 0, false
	}
	return *f.vendor.DriverID, true
}

// The Assign* methods return the updated fulfillment and whether anything
// changed. Assigning onto the inactive path switches paths and clears the
// other one.

func (f Fulfillment) AssignVendor(id int64) (Fulfillment, bool) {
	v := f.Vendor()
	if f.Path() == PathVendor && equalRef(v.VendorID, id) {
		return f, false
	}
	v.VendorID = ref(id)
	return Fulfillment{vendor: &v}, true
}

func (f Fulfillment) AssignVendorCab(id int64) (Fulfillment, bool) {
	v := f.Vendor()
	if f.Path() == PathVendor && equalRef(v.CabID, id) {
		return f, false
	}
	v.CabID = ref(id)
	return Fulfillment{vendor: &v}, true
}

func (f Fulfillment) AssignVendorDriver(id int64) (Fulfillment, bool) {
	v := f.Vendor()
	if f.Path() == PathVendor && equalRef(v.DriverID, id) {
		return f, false
	}
	v.DriverID = ref(id)
	return Fulfillment{vendor: &v}, true
}

func (f Fulfillment) AssignCabAdmin(id int64) (Fulfillment, bool) {
	a := f.Admin()
	if f.Path() == PathAdmin && equalRef(a.CabAdminID, id) {
		return f, false
	}
	a.CabAdminID = ref(id)
	return Fulfillment{admin: &a}, true
}

func (f Fulfillment) AssignDriveAdmin(id int64) (Fulfillment, bool) {
	a := f.Admin()
	if f.Path() == PathAdmin && equalRef(a.DriveAdminID, id) {
		return f, false
	}
	a.DriveAdminID = ref(id)
	return Fulfillment{admin: &a}, true
}

func ref(id int64) *int64 {
	return &id
}

func equalRef(p *int64, id int64) bool {
	return p != nil && *p == id
}
