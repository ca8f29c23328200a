package service

import (
	"github.com/google/uuid"

	domainErrors "github.com/talentforge/jobboard-service/internal/domain/errors"
	"github.com/talentforge/jobboard-service/internal/domain/models"
)

// StepTarget identifies which dependent-entity set a cascade step removes.
type StepTarget string

const (
	StepCareerHistory      StepTarget = "career_history_by_profile"
	StepProfile            StepTarget = "job_seeker_profile"
	StepApplicationsByJobs StepTarget = "applications_by_jobs"
	StepEngagementsByJobs  StepTarget = "engagements_by_jobs"
	StepJobs               StepTarget = "jobs"
	StepCompanies          StepTarget = "companies"
	StepApplicationsByUser StepTarget = "applications_by_user"
	StepEngagementsByUser  StepTarget = "engagements_by_user"
	StepNotificationsUser  StepTarget = "notifications_by_user"
	StepBlogPostsByAuthor  StepTarget = "blog_posts_by_author"
	StepUser               StepTarget = "user"
)

// CascadeStep is one ordered deletion in a cascade plan. Exactly one of the
// scope fields is meaningful for a given target.
type CascadeStep struct {
	Target     StepTarget
	UserID     uuid.UUID
	ProfileID  uuid.UUID
	JobIDs     []uuid.UUID
	CompanyIDs []uuid.UUID
}

// CascadeSnapshot is a read-only view of the entities a user owns, captured
// before the plan is built. ProfileID is nil when the user has no job-seeker
// profile.
type CascadeSnapshot struct {
	ProfileID  *uuid.UUID
	CompanyIDs []uuid.UUID
	JobIDs     []uuid.UUID
}

// BuildCascadePlan computes the ordered deletions required before the user
// row itself can be removed. Children always precede their parents: career
// history before the profile, applications and engagements before jobs, jobs
// before companies. The plan performs no I/O; empty dependent sets yield
// no-op steps rather than failures.
func BuildCascadePlan(userID uuid.UUID, role models.UserRole, snap CascadeSnapshot) ([]CascadeStep, error) {
	if !models.ValidRole(role) {
		return nil, domainErrors.ErrInvalidRole
	}

	var plan []CascadeStep

	switch role {
	case models.RoleJobSeeker:
		if snap.ProfileID != nil {
			plan = append(plan,
				CascadeStep{Target: StepCareerHistory, ProfileID: *snap.ProfileID},
				CascadeStep{Target: StepProfile, ProfileID: *snap.ProfileID},
			)
		}
	case models.RoleEmployer:
		plan = append(plan,
			CascadeStep{Target: StepApplicationsByJobs, JobIDs: snap.JobIDs},
			CascadeStep{Target: StepEngagementsByJobs, JobIDs: snap.JobIDs},
			CascadeStep{Target: StepJobs, JobIDs: snap.JobIDs},
			CascadeStep{Target: StepCompanies, CompanyIDs: snap.CompanyIDs},
		)
	case models.RoleSuperAdmin:
		// Admins own no profile, companies or jobs; only the cross-cutting
		// steps below apply.
	}

	// Applications the user submitted reference the user row directly, so
	// they go with the cross-cutting steps for every role.
	plan = append(plan,
		CascadeStep{Target: StepApplicationsByUser, UserID: userID},
		CascadeStep{Target: StepEngagementsByUser, UserID: userID},
		CascadeStep{Target: StepNotificationsUser, UserID: userID},
		CascadeStep{Target: StepBlogPostsByAuthor, UserID: userID},
		CascadeStep{Target: StepUser, UserID: userID},
	)

	return plan, nil
}
