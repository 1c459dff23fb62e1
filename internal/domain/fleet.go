package domain

import (
	"strings"
	"time"
)

type BusOrigin string

const (
	OriginLaEsperanza BusOrigin = "la_esperanza"
	OriginTulcan      BusOrigin = "tulcan"
)

func (o BusOrigin) IsValid() bool {
	return o == OriginLaEsperanza || o == OriginTulcan
}

type Bus struct {
	ID        string    `json:"id"`
	Number    string    `json:"number"`
	Route     string    `json:"route"`
	Capacity  int       `json:"capacity"`
	Driver    *string   `json:"driver"`
	Active    bool      `json:"active"`
	Origin    BusOrigin `json:"origin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateBusRequest struct {
	ID       string  `json:"-"`
	Route    *string `json:"route"`
	Capacity *int    `json:"capacity" validate:"omitempty,min=1"`
	Driver   *string `json:"driver"`
	Active   *bool   `json:"active"`
}

type Driver struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Plate     string    `json:"plate"`
	Capacity  *string   `json:"capacity"`
	License   *string   `json:"license"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateDriverRequest struct {
	ID       string  `json:"-"`
	Name     *string `json:"name"`
	Plate    *string `json:"plate"`
	Capacity *string `json:"capacity"`
	License  *string `json:"license"`
	Active   *bool   `json:"active"`
}

type DeparturePlace struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// FindDriverByName localiza o motorista atribuído a um ônibus; o ônibus guarda apenas o nome
func FindDriverByName(drivers []*Driver, name string) *Driver {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	for _, driver := range drivers {
		if strings.EqualFold(strings.TrimSpace(driver.Name), name) {
			return driver
		}
	}
	return nil
}
