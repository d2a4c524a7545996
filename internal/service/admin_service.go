package service

import "context"

// DashboardCounts is the admin landing-page summary. Soft-deleted rows
// are excluded wherever the entity carries a lifecycle flag.
type DashboardCounts struct {
	Leathers     int64 `json:"leathers"`
	Categories   int64 `json:"categories"`
	Testimonials int64 `json:"testimonials"`
	TeamMembers  int64 `json:"teamMembers"`
	Contacts     int64 `json:"contacts"`
	Users        int64 `json:"users"`
}

// AdminService aggregates cross-entity reads for the back-office
type AdminService interface {
	Dashboard(ctx context.Context) (*DashboardCounts, error)
}

type adminService struct {
	leathers     LeatherService
	categories   CategoryService
	testimonials TestimonialService
	team         TeamService
	contacts     ContactService
	users        UserService
}

// NewAdminService returns a new instance of AdminService
func NewAdminService(leathers LeatherService, categories CategoryService, testimonials TestimonialService, team TeamService, contacts ContactService, users UserService) AdminService {
	return &adminService{
		leathers:     leathers,
		categories:   categories,
		testimonials: testimonials,
		team:         team,
		contacts:     contacts,
		users:        users,
	}
}

func (s *adminService) Dashboard(ctx context.Context) (*DashboardCounts, error) {
	counts := &DashboardCounts{}

	steps := []struct {
		dst   *int64
		count func(context.Context) (int64, error)
	}{
		{&counts.Leathers, s.leathers.Count},
		{&counts.Categories, s.categories.Count},
		{&counts.Testimonials, s.testimonials.Count},
		{&counts.TeamMembers, s.team.Count},
		{&counts.Contacts, s.contacts.Count},
		{&counts.Users, s.users.Count},
	}

	for _, step := range steps {
		n, err := step.count(ctx)
		if err != nil {
			return nil, err
		}
		*step.dst = n
	}
	return counts, nil
}
