package relq

import (
	"github.com/jonlawlor/relq/kp"
)

// This file contains example data for a suppliers, parts & orders database,
// using the example provided by C. J. Date in his book "Database in Depth"
// in Figure 1-3.  Orders refer to a sixth supplier which does not exist, so
// that joins have something to leave out.

type supplierTup struct {
	SNO    int
	SName  string
	Status int
	City   string
}

type partTup struct {
	PNO    int
	PName  string
	Color  string
	Weight float64
	City   string
}

type orderTup struct {
	PNO int
	SNO int
	Qty int
}

func suppliers() []supplierTup {
	return []supplierTup{
		{1, "Smith", 20, "London"},
		{2, "Jones", 10, "Paris"},
		{3, "Blake", 30, "Paris"},
		{4, "Clark", 20, "London"},
		{5, "Adams", 30, "Athens"},
	}
}

func parts() []partTup {
	return []partTup{
		{1, "Nut", "Red", 12.0, "London"},
		{2, "Bolt", "Green", 17.0, "Paris"},
		{3, "Screw", "Blue", 17.0, "Oslo"},
		{4, "Screw", "Red", 14.0, "London"},
		{5, "Cam", "Blue", 12.0, "Paris"},
		{6, "Cog", "Red", 19.0, "London"},
	}
}

func orders() []orderTup {
	return []orderTup{
		{1, 1, 300},
		{1, 2, 200},
		{1, 3, 400},
		{1, 4, 200},
		{1, 5, 100},
		{1, 6, 100},
		{2, 1, 300},
		{2, 2, 400},
		{3, 2, 200},
		{4, 2, 200},
		{4, 4, 300},
		{4, 5, 400},
	}
}

var (
	supplierSNO  = kp.New(func(s *supplierTup) *int { return &s.SNO })
	supplierName = kp.New(func(s *supplierTup) *string { return &s.SName })
	supplierCity = kp.New(func(s *supplierTup) *string { return &s.City })
	status       = kp.New(func(s *supplierTup) *int { return &s.Status })

	partPNO  = kp.New(func(p *partTup) *int { return &p.PNO })
	partName = kp.New(func(p *partTup) *string { return &p.PName })
	color    = kp.New(func(p *partTup) *string { return &p.Color })
	weight   = kp.New(func(p *partTup) *float64 { return &p.Weight })
	partCity = kp.New(func(p *partTup) *string { return &p.City })

	orderPNO = kp.New(func(o *orderTup) *int { return &o.PNO })
	orderSNO = kp.New(func(o *orderTup) *int { return &o.SNO })
	qty      = kp.New(func(o *orderTup) *int { return &o.Qty })
)

// a record type with optional fields, for testing absent values
type product struct {
	ID       int
	Name     string
	Category string
	Price    float64
	Stock    *int
	Rating   *float64
}

func ipt(i int) *int         { return &i }
func fpt(f float64) *float64 { return &f }

func products() []product {
	return []product{
		{1, "Laptop", "Electronics", 999.99, ipt(5), fpt(4.5)},
		{2, "Mouse", "Electronics", 29.99, ipt(50), nil},
		{3, "Desk", "Furniture", 299.99, nil, fpt(4.1)},
		{4, "Chair", "Furniture", 149.99, ipt(0), fpt(3.8)},
		{5, "Monitor", "Electronics", 299.99, ipt(12), fpt(4.7)},
		{6, "Lamp", "Furniture", 39.99, nil, nil},
	}
}

var (
	productID = kp.New(func(p *product) *int { return &p.ID })
	category  = kp.New(func(p *product) *string { return &p.Category })
	price     = kp.New(func(p *product) *float64 { return &p.Price })
	stock     = kp.Deref(kp.New(func(p *product) **int { return &p.Stock }))
	rating    = kp.Deref(kp.New(func(p *product) **float64 { return &p.Rating }))
)

// ids returns the ID of every product reference
func ids(ps []*product) []int {
	res := []int{}
	for _, p := range ps {
		res = append(res, p.ID)
	}
	return res
}

// idsOf returns the ID of every product
func idsOf(ps []product) []int {
	res := []int{}
	for _, p := range ps {
		res = append(res, p.ID)
	}
	return res
}
