package cli

import (
	"fmt"
	"strings"
	"time"

	grpcAdapter "github.com/andrescamacho/nations-go/internal/adapters/grpc"
)

// CountryFormatter renders a country snapshot as an indented tree
type CountryFormatter struct {
	now func() time.Time
}

// NewCountryFormatter creates a formatter; now is used for "ready in" estimates
func NewCountryFormatter(now func() time.Time) *CountryFormatter {
	if now == nil {
		now = time.Now
	}
	return &CountryFormatter{now: now}
}

// FormatCountry renders identity, resources, buildings and the construction queue
func (f *CountryFormatter) FormatCountry(c *grpcAdapter.CountryReply) string {
	if c == nil {
		return "(no country)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", c.Name, c.Government)
	fmt.Fprintf(&b, "├── id: %s  user: %s\n", c.ID, c.UserID)
	fmt.Fprintf(&b, "├── values: %s\n", strings.Join(c.Values, ", "))
	fmt.Fprintf(&b, "├── resources\n")
	f.formatResources(&b, "│   ", c.Resources)

	fmt.Fprintf(&b, "├── buildings")
	if len(c.Buildings) == 0 {
		b.WriteString(" (none)\n")
	} else {
		b.WriteString("\n")
		for i, owned := range c.Buildings {
			fmt.Fprintf(&b, "│   %s %s x%d\n", branch(i, len(c.Buildings)), owned.Type, owned.Count)
		}
	}

	fmt.Fprintf(&b, "└── construction queue")
	b.WriteString(f.FormatQueue("    ", c.ConstructionQueue))
	return b.String()
}

// FormatQueue renders pending orders under the given prefix, in queue order
func (f *CountryFormatter) FormatQueue(prefix string, queue []grpcAdapter.OrderMessage) string {
	if len(queue) == 0 {
		return " (empty)\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	now := f.now()
	for i, order := range queue {
		fmt.Fprintf(&b, "%s%s %s completes %s (%s)\n",
			prefix, branch(i, len(queue)), order.BuildingType,
			order.CompletesAt.UTC().Format(time.RFC3339), remaining(order.CompletesAt, now))
	}
	return b.String()
}

func (f *CountryFormatter) formatResources(b *strings.Builder, prefix string, r grpcAdapter.ResourcesMessage) {
	fmt.Fprintf(b, "%s├── population:  %d\n", prefix, r.Population)
	fmt.Fprintf(b, "%s├── economy:     %d\n", prefix, r.Economy)
	fmt.Fprintf(b, "%s└── environment: %d\n", prefix, r.Environment)
}

func branch(i, n int) string {
	if i == n-1 {
		return "└──"
	}
	return "├──"
}

func remaining(completesAt, now time.Time) string {
	d := completesAt.Sub(now)
	if d <= 0 {
		return "ready"
	}
	return "in " + d.Truncate(time.Minute).String()
}
