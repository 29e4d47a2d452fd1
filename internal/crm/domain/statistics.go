package domain

import "time"

const NoCompanyBucket = "No Company"

type ContactStatistics struct {
	Total              int64
	Active             int64
	Inactive           int64
	Primary            int64
	Deleted            int64
	WithCompany        int64
	WithoutCompany     int64
	LastContactCreated *time.Time
	LastContactUpdated *time.Time
	ContactsByCompany  map[string]int64
	ContactsByStatus   map[string]int64
}

// ComputeContactStatistics aggregates over every contact passed in, soft
// deleted ones included. Contacts must carry their company summaries.
func ComputeContactStatistics(contacts []Contact) ContactStatistics {
	stats := ContactStatistics{
		ContactsByCompany: make(map[string]int64),
		ContactsByStatus:  make(map[string]int64),
	}

	for i := range contacts {
		c := &contacts[i]
		stats.Total++
		if !c.IsInactive && !c.IsDeleted() {
			stats.Active++
		}
		if c.IsInactive {
			stats.Inactive++
		}
		if c.IsPrimary {
			stats.Primary++
		}
		if c.IsDeleted() {
			stats.Deleted++
		}

		if len(c.Companies) == 0 {
			stats.WithoutCompany++
			stats.ContactsByCompany[NoCompanyBucket]++
		} else {
			stats.WithCompany++
			for _, company := range c.Companies {
				stats.ContactsByCompany[string(company.Name)]++
			}
		}

		stats.ContactsByStatus[c.StatusLabel()]++
		stats.LastContactCreated = latest(stats.LastContactCreated, &c.CreatedAt)
		stats.LastContactUpdated = latest(stats.LastContactUpdated, c.UpdatedAt)
	}

	return stats
}

func latest(current, candidate *time.Time) *time.Time {
	if candidate == nil {
		return current
	}
	if current == nil || candidate.After(*current) {
		value := *candidate
		return &value
	}
	return current
}
