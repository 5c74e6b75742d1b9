// Package report renders cross-cutting statistics over the directory and
// ledger into plain-text reports. Output is deterministic for identical
// input data: fixed headers, no timestamps in the body.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/avolkov/bookdesk/internal/models"
	"github.com/avolkov/bookdesk/internal/store"
)

// Kind is the closed set of report types.
type Kind int

const (
	CustomerSummary Kind = iota
	RegistrationAnalysis
	OrderStatistics
	CustomerActivity
)

var kindNames = map[Kind]string{
	CustomerSummary:      "customer_summary",
	RegistrationAnalysis: "registration_analysis",
	OrderStatistics:      "order_statistics",
	CustomerActivity:     "customer_activity",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind resolves a report name from the CLI or API boundary.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown report kind %q", s)
}

// Kinds lists the valid report names, for usage messages.
func Kinds() []string {
	names := make([]string, 0, len(kindNames))
	for _, name := range kindNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Range is an inclusive date filter over normalized YYYY-MM-DD strings.
// The zero value filters nothing.
type Range struct {
	From string
	To   string
}

func (r Range) contains(date string) bool {
	if r.From != "" && date < r.From {
		return false
	}
	if r.To != "" && date > r.To {
		return false
	}
	return true
}

func (r Range) filterOrders(orders []models.Order) []models.Order {
	if r == (Range{}) {
		return orders
	}
	var out []models.Order
	for _, o := range orders {
		if r.contains(o.Date) {
			out = append(out, o)
		}
	}
	return out
}

// Generate renders one report over the given snapshot. The date range
// applies to order dates for order-derived figures and to registration
// dates for the registration analysis. An out-of-range kind yields a
// literal "Unknown report type" body rather than an error.
func Generate(kind Kind, customers []models.Customer, orders []models.Order, rng Range) string {
	switch kind {
	case CustomerSummary:
		return customerSummary(customers, rng.filterOrders(orders))
	case RegistrationAnalysis:
		return registrationAnalysis(customers, rng)
	case OrderStatistics:
		return orderStatistics(rng.filterOrders(orders))
	case CustomerActivity:
		return customerActivity(customers, rng.filterOrders(orders))
	default:
		return "Unknown report type\n"
	}
}

func customerSummary(customers []models.Customer, orders []models.Order) string {
	ledger := ledgerOf(orders)

	var b strings.Builder
	b.WriteString("CUSTOMER SUMMARY REPORT\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	withOrders := 0
	totalRevenue := 0.0
	for _, c := range customers {
		stats := ledger.Statistics(c.ID)
		if stats.Count > 0 {
			withOrders++
			totalRevenue += stats.TotalAmount
		}
	}

	fmt.Fprintf(&b, "Total customers: %d\n", len(customers))
	fmt.Fprintf(&b, "Customers with orders: %d\n", withOrders)
	fmt.Fprintf(&b, "Total revenue: %.2f\n\n", totalRevenue)

	b.WriteString("CUSTOMER DETAILS:\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	for _, c := range customers {
		stats := ledger.Statistics(c.ID)
		fmt.Fprintf(&b, "ID: %d | Name: %s\n", c.ID, c.FullName)
		fmt.Fprintf(&b, "    Orders: %d | Spent: %.2f\n", stats.Count, stats.TotalAmount)
		fmt.Fprintf(&b, "    Registered: %s\n\n", c.RegistrationDate)
	}
	return b.String()
}

func registrationAnalysis(customers []models.Customer, rng Range) string {
	var b strings.Builder
	b.WriteString("CUSTOMER REGISTRATION ANALYSIS\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	// Bucket by YYYY-MM prefix of the registration date.
	buckets := map[string]int{}
	total := 0
	for _, c := range customers {
		if c.RegistrationDate == "" || !rng.contains(c.RegistrationDate) {
			continue
		}
		month := c.RegistrationDate
		if len(month) > 7 {
			month = month[:7]
		}
		buckets[month]++
		total++
	}

	b.WriteString("REGISTRATIONS BY MONTH:\n")
	b.WriteString(strings.Repeat("-", 25) + "\n")

	months := make([]string, 0, len(buckets))
	for m := range buckets {
		months = append(months, m)
	}
	sort.Strings(months)
	for _, m := range months {
		fmt.Fprintf(&b, "%s: %d customers\n", m, buckets[m])
	}

	fmt.Fprintf(&b, "\nTotal registrations: %d\n", total)
	return b.String()
}

func orderStatistics(orders []models.Order) string {
	var b strings.Builder
	b.WriteString("ORDER STATISTICS\n")
	b.WriteString(strings.Repeat("=", 40) + "\n\n")

	if len(orders) == 0 {
		b.WriteString("No orders found.\n")
		return b.String()
	}

	totalRevenue := 0.0
	for _, o := range orders {
		totalRevenue += o.TotalAmount
	}

	fmt.Fprintf(&b, "Total orders: %d\n", len(orders))
	fmt.Fprintf(&b, "Total revenue: %.2f\n", totalRevenue)
	fmt.Fprintf(&b, "Average order value: %.2f\n\n", totalRevenue/float64(len(orders)))

	// Status breakdown in first-occurrence order, not sorted.
	counts := map[string]int{}
	var statuses []string
	for _, o := range orders {
		if _, seen := counts[o.Status]; !seen {
			statuses = append(statuses, o.Status)
		}
		counts[o.Status]++
	}

	b.WriteString("ORDERS BY STATUS:\n")
	b.WriteString(strings.Repeat("-", 20) + "\n")
	for _, status := range statuses {
		fmt.Fprintf(&b, "%s: %d\n", status, counts[status])
	}
	return b.String()
}

func customerActivity(customers []models.Customer, orders []models.Order) string {
	ledger := ledgerOf(orders)

	var b strings.Builder
	b.WriteString("CUSTOMER ACTIVITY\n")
	b.WriteString(strings.Repeat("=", 40) + "\n\n")

	type ranked struct {
		customer models.Customer
		stats    store.OrderStats
	}
	var active []ranked
	for _, c := range customers {
		stats := ledger.Statistics(c.ID)
		if stats.Count > 0 {
			active = append(active, ranked{c, stats})
		}
	}
	// Stable sort: ties keep their original relative order.
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].stats.Count > active[j].stats.Count
	})

	b.WriteString("TOP CUSTOMERS BY ORDER COUNT:\n")
	b.WriteString(strings.Repeat("-", 45) + "\n")
	for i, r := range active {
		if i >= 10 {
			break
		}
		fmt.Fprintf(&b, "%s: %d orders, %.2f spent\n", r.customer.FullName, r.stats.Count, r.stats.TotalAmount)
	}
	return b.String()
}

// ledgerOf rebuilds a throwaway ledger over a (possibly filtered) order
// slice so the statistics logic lives in exactly one place.
func ledgerOf(orders []models.Order) *store.Ledger {
	l := store.NewLedger()
	for _, o := range orders {
		l.Add(o)
	}
	return l
}
