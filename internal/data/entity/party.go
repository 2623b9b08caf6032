package entity

type Rider struct {
	Base
	Username string  `db:"username"`
	Email    string  `db:"email"`
	Phone    *string `db:"phone"`
	Coordinates
}

type Vendor struct {
	Base
	CompanyName string `db:"company_name"`
	Email       string `db:"email"`
	Phone       string `db:"phone"`
}

type VendorCab struct {
	Base
	VendorID  int64  `db:"vendor_id"`
	CarName   string `db:"car_name"`
	VehicleNo string `db:"vehicle_no"`
}

type VendorDriver struct {
	Base
	VendorID   int64  `db:"vendor_id"`
	DriverName string `db:"driver_name"`
	ContactNo  string `db:"contact_no"`
	Coordinates
}

type CabAdmin struct {
	Base
	CarName   string `db:"car_name"`
	VehicleNo string `db:"vehicle_no"`
}

type DriveAdmin struct {
	Base
	DriverName string `db:"driver_name"`
	ContactNo  string `db:"contact_no"`
}
