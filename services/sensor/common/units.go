package common

import (
	"encoding/json"
	"fmt"
)

// Unit is the PRTG measurement unit of a channel
type Unit int

// the order matches the PRTG unit vocabulary
const (
	BytesBandwidth Unit = iota
	BytesMemory
	BytesDisk
	Temperature
	Percent
	TimeResponse
	TimeSeconds
	Custom
	Count
	CPU
	BytesFile
	SpeedDisk
	SpeedNet
	TimeHours
)

var unitNames = []string{
	"BytesBandwidth",
	"BytesMemory",
	"BytesDisk",
	"Temperature",
	"Percent",
	"TimeResponse",
	"TimeSeconds",
	"Custom",
	"Count",
	"CPU",
	"BytesFile",
	"SpeedDisk",
	"SpeedNet",
	"TimeHours",
}

// String returns the symbolic name of the unit
func (u Unit) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return fmt.Sprintf("Unit(%d)", int(u))
	}

	return unitNames[u]
}

// IsBytes returns true for the byte-based units
func (u Unit) IsBytes() bool {
	return u == BytesBandwidth || u == BytesMemory || u == BytesDisk || u == BytesFile
}

// ParseUnit returns the unit with the provided symbolic name
func ParseUnit(name string) (Unit, error) {
	for i, n := range unitNames {
		if n == name {
			return Unit(i), nil
		}
	}

	return 0, fmt.Errorf("unknown unit %q", name)
}

// MarshalJSON writes the unit as its symbolic name
func (u Unit) MarshalJSON() ([]byte, error) {
	if u < 0 || int(u) >= len(unitNames) {
		return nil, fmt.Errorf("can not marshal unknown unit %d", int(u))
	}

	return json.Marshal(unitNames[u])
}

// UnmarshalJSON reads the unit from its symbolic name
func (u *Unit) UnmarshalJSON(data []byte) error {
	var name string
	err := json.Unmarshal(data, &name)
	if err != nil {
		return err
	}

	parsed, err := ParseUnit(name)
	if err != nil {
		return err
	}

	*u = parsed
	return nil
}
