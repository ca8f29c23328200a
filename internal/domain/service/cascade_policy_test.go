package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/talentforge/jobboard-service/internal/domain/errors"
	"github.com/talentforge/jobboard-service/internal/domain/models"
)

func targets(plan []CascadeStep) []StepTarget {
	out := make([]StepTarget, len(plan))
	for i, s := range plan {
		out[i] = s.Target
	}
	return out
}

func TestBuildCascadePlan_JobSeekerWithProfile(t *testing.T) {
	userID := uuid.New()
	profileID := uuid.New()

	plan, err := BuildCascadePlan(userID, models.RoleJobSeeker, CascadeSnapshot{ProfileID: &profileID})
	require.NoError(t, err)

	assert.Equal(t, []StepTarget{
		StepCareerHistory,
		StepProfile,
		StepApplicationsByUser,
		StepEngagementsByUser,
		StepNotificationsUser,
		StepBlogPostsByAuthor,
		StepUser,
	}, targets(plan))

	assert.Equal(t, profileID, plan[0].ProfileID)
	assert.Equal(t, profileID, plan[1].ProfileID)
	assert.Equal(t, userID, plan[len(plan)-1].UserID)
}

func TestBuildCascadePlan_JobSeekerWithoutProfile(t *testing.T) {
	userID := uuid.New()

	plan, err := BuildCascadePlan(userID, models.RoleJobSeeker, CascadeSnapshot{})
	require.NoError(t, err)

	assert.Equal(t, []StepTarget{
		StepApplicationsByUser,
		StepEngagementsByUser,
		StepNotificationsUser,
		StepBlogPostsByAuthor,
		StepUser,
	}, targets(plan))
}

func TestBuildCascadePlan_EmployerChildrenBeforeParents(t *testing.T) {
	userID := uuid.New()
	companyIDs := []uuid.UUID{uuid.New(), uuid.New()}
	jobIDs := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	plan, err := BuildCascadePlan(userID, models.RoleEmployer, CascadeSnapshot{
		CompanyIDs: companyIDs,
		JobIDs:     jobIDs,
	})
	require.NoError(t, err)

	order := targets(plan)
	assert.Equal(t, []StepTarget{
		StepApplicationsByJobs,
		StepEngagementsByJobs,
		StepJobs,
		StepCompanies,
		StepApplicationsByUser,
		StepEngagementsByUser,
		StepNotificationsUser,
		StepBlogPostsByAuthor,
		StepUser,
	}, order)

	assert.Equal(t, jobIDs, plan[0].JobIDs)
	assert.Equal(t, jobIDs, plan[1].JobIDs)
	assert.Equal(t, jobIDs, plan[2].JobIDs)
	assert.Equal(t, companyIDs, plan[3].CompanyIDs)
}

func TestBuildCascadePlan_EmployerWithNoDependents(t *testing.T) {
	plan, err := BuildCascadePlan(uuid.New(), models.RoleEmployer, CascadeSnapshot{})
	require.NoError(t, err)

	// Scoped steps stay in the plan as no-ops over empty id sets.
	assert.Len(t, plan, 9)
	assert.Empty(t, plan[0].JobIDs)
	assert.Empty(t, plan[3].CompanyIDs)
}

func TestBuildCascadePlan_SuperAdmin(t *testing.T) {
	userID := uuid.New()

	plan, err := BuildCascadePlan(userID, models.RoleSuperAdmin, CascadeSnapshot{})
	require.NoError(t, err)

	assert.Equal(t, []StepTarget{
		StepApplicationsByUser,
		StepEngagementsByUser,
		StepNotificationsUser,
		StepBlogPostsByAuthor,
		StepUser,
	}, targets(plan))
}

func TestBuildCascadePlan_InvalidRole(t *testing.T) {
	plan, err := BuildCascadePlan(uuid.New(), models.UserRole("moderator"), CascadeSnapshot{})
	assert.ErrorIs(t, err, domainErrors.ErrInvalidRole)
	assert.Nil(t, plan)
}

func TestBuildCascadePlan_SubmittedApplicationsPrecedeUser(t *testing.T) {
	// job_applications.job_seeker_id references users directly, so every
	// role's plan must clear the user's own applications before the user row.
	for _, role := range []models.UserRole{models.RoleJobSeeker, models.RoleEmployer, models.RoleSuperAdmin} {
		userID := uuid.New()
		plan, err := BuildCascadePlan(userID, role, CascadeSnapshot{})
		require.NoError(t, err)

		order := targets(plan)
		appIdx, userIdx := -1, -1
		for i, target := range order {
			switch target {
			case StepApplicationsByUser:
				appIdx = i
			case StepUser:
				userIdx = i
			}
		}
		require.NotEqual(t, -1, appIdx, "role %s: plan %v has no applications_by_user step", role, order)
		assert.Less(t, appIdx, userIdx, "role %s", role)
		assert.Equal(t, userID, plan[appIdx].UserID)
	}
}

func TestBuildCascadePlan_UserIsAlwaysLast(t *testing.T) {
	for _, role := range []models.UserRole{models.RoleJobSeeker, models.RoleEmployer, models.RoleSuperAdmin} {
		plan, err := BuildCascadePlan(uuid.New(), role, CascadeSnapshot{})
		require.NoError(t, err)
		require.NotEmpty(t, plan)
		assert.Equal(t, StepUser, plan[len(plan)-1].Target, "role %s", role)
	}
}
