// a set of examples for the relq package

package relq_test

import (
	"fmt"
	"slices"

	"github.com/jonlawlor/relq"
	"github.com/jonlawlor/relq/kp"
)

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

var suppliers = []supplierTup{
	{1, "Smith", 20, "London"},
	{2, "Jones", 10, "Paris"},
	{3, "Blake", 30, "Paris"},
	{4, "Clark", 20, "London"},
	{5, "Adams", 30, "Athens"},
}

var parts = []partTup{
	{1, "Nut", "Red", 12.0, "London"},
	{2, "Bolt", "Green", 17.0, "Paris"},
	{3, "Screw", "Blue", 17.0, "Oslo"},
	{4, "Screw", "Red", 14.0, "London"},
	{5, "Cam", "Blue", 12.0, "Paris"},
	{6, "Cog", "Red", 19.0, "London"},
}

var orders = []orderTup{
	{1, 1, 300},
	{1, 2, 200},
	{1, 3, 400},
	{2, 1, 300},
	{2, 2, 400},
	{3, 2, 200},
	{4, 2, 200},
	{4, 4, 300},
	{4, 5, 400},
}

var (
	supplierSNO  = kp.New(func(s *supplierTup) *int { return &s.SNO })
	supplierCity = kp.New(func(s *supplierTup) *string { return &s.City })
	status       = kp.New(func(s *supplierTup) *int { return &s.Status })
	weight       = kp.New(func(p *partTup) *float64 { return &p.Weight })
	orderSNO     = kp.New(func(o *orderTup) *int { return &o.SNO })
	orderPNO     = kp.New(func(o *orderTup) *int { return &o.PNO })
)

func ExampleQuery_Where() {
	q := relq.New(suppliers).Where(kp.Eq(supplierCity, "Paris"))
	fmt.Print(relq.TableOf(q.All()))
	// Output:
	// SNO  SName  Status  City
	// 2    Jones  10      Paris
	// 3    Blake  30      Paris
}

func ExampleOrderByFloatDesc() {
	for _, p := range relq.OrderByFloatDesc(relq.New(parts), weight) {
		fmt.Println(p.PName, p.Weight)
	}
	// Output:
	// Cog 19
	// Bolt 17
	// Screw 17
	// Screw 14
	// Nut 12
	// Cam 12
}

func ExampleLazyQuery_Take() {
	checked := 0
	heavy := func(p *partTup) bool {
		checked++
		return p.Weight > 15
	}
	for _, p := range relq.Lazy(parts).Where(heavy).Take(2).Collect() {
		fmt.Println(p.PName)
	}
	fmt.Println("checked", checked, "of", len(parts))
	// Output:
	// Bolt
	// Screw
	// checked 3 of 6
}

func ExampleInnerJoin() {
	type supply struct {
		Name string
		Qty  int
	}
	bolts := relq.New(orders).Where(kp.Eq(orderPNO, 2))
	res := relq.InnerJoin(relq.JoinFrom(relq.FromSlice(suppliers), bolts.Seq()), supplierSNO, orderSNO,
		func(s *supplierTup, o *orderTup) supply {
			return supply{s.SName, o.Qty}
		})
	fmt.Print(relq.Table(res))
	// Output:
	// Name   Qty
	// Smith  300
	// Jones  400
}

func ExampleLeftJoin() {
	type supply struct {
		Name string
		Qty  *int
	}
	screws := relq.New(orders).Where(kp.Eq(orderPNO, 3))
	res := relq.LeftJoin(relq.JoinFrom(relq.FromSlice(suppliers), screws.Seq()), supplierSNO, orderSNO,
		func(s *supplierTup, o *orderTup) supply {
			if o == nil {
				return supply{s.SName, nil}
			}
			return supply{s.SName, &o.Qty}
		})
	fmt.Print(relq.Table(res))
	// Output:
	// Name   Qty
	// Smith  -
	// Jones  200
	// Blake  -
	// Clark  -
	// Adams  -
}

func ExampleGroupBy() {
	groups := relq.GroupBy(relq.New(suppliers), supplierCity)
	cities := make([]string, 0, len(groups))
	for city := range groups {
		cities = append(cities, city)
	}
	slices.Sort(cities)
	for _, city := range cities {
		names := []string{}
		for _, s := range groups[city] {
			names = append(names, s.SName)
		}
		fmt.Println(city, names)
	}
	// Output:
	// Athens [Adams]
	// London [Smith Clark]
	// Paris [Jones Blake]
}

func ExampleMax() {
	q := relq.New(suppliers).Where(kp.Ne(supplierCity, "Athens"))
	if m, ok := relq.Max(q, status); ok {
		fmt.Println("max status", m)
	}
	if _, ok := relq.Max(q.Where(kp.Eq(supplierCity, "Rome")), status); !ok {
		fmt.Println("no suppliers in Rome")
	}
	// Output:
	// max status 30
	// no suppliers in Rome
}
