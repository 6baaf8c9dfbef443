package entity

// Person is a declared party or roommate record.
// Address may be a plain string, a structured object or a history list.
type Person struct {
	Name          string `json:"name"`
	DOB           any    `json:"dob,omitempty"`
	IDNumber      string `json:"idNumber,omitempty"`
	IDIssuedDate  string `json:"idIssuedDate,omitempty"`
	IDIssuedPlace string `json:"idIssuedPlace,omitempty"`
	Address       any    `json:"address,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
}

// Bike is a vehicle registered under a contract.
type Bike struct {
	Plate string `json:"plate"`
	Color string `json:"color,omitempty"`
	Brand string `json:"brand,omitempty"`
}
