package repository

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"issuehub/internal/domain/issue"
	"issuehub/internal/infrastructure/persistence/models"
	shareddb "issuehub/internal/shared/db"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.UserModel{},
		&models.ProjectModel{},
		&models.MemberModel{},
		&models.IssueModel{},
		&models.CommentModel{},
		&models.AuditLogModel{},
	)
	require.NoError(t, err)

	return db
}

func createTestIssue(t *testing.T, repo *IssueRepository, projectID uint, title string, priority issue.Priority, reporterID uint) *issue.Issue {
	t.Helper()
	i, err := issue.NewIssue(projectID, title, nil, priority, reporterID, nil)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), i))
	return i
}

func setStatus(t *testing.T, repo *IssueRepository, i *issue.Issue, status issue.Status) {
	t.Helper()
	require.NoError(t, i.ChangeStatus(status))
	require.NoError(t, repo.Update(context.Background(), i))
}

func TestIssueRepository_SaveAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIssueRepository(db)
	ctx := context.Background()

	desc := "happens on every login attempt"
	created, err := issue.NewIssue(1, "Login bug", &desc, issue.PriorityHigh, 2, nil)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, created))
	assert.NotZero(t, created.ID())

	found, err := repo.GetByID(ctx, created.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Login bug", found.Title())
	require.NotNil(t, found.Description())
	assert.Equal(t, desc, *found.Description())
	assert.Equal(t, issue.StatusOpen, found.Status())
	assert.Equal(t, uint(2), found.ReporterID())
}

func TestIssueRepository_GetByID_Missing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIssueRepository(db)

	found, err := repo.GetByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestIssueRepository_Update_ClearsAssignee(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIssueRepository(db)
	ctx := context.Background()

	assignee := uint(7)
	created, err := issue.NewIssue(1, "Assigned issue", nil, issue.PriorityMedium, 2, &assignee)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, created))

	unassign := uint(0)
	require.NoError(t, created.Apply(issue.Patch{AssigneeID: &unassign}))
	require.NoError(t, repo.Update(ctx, created))

	found, err := repo.GetByID(ctx, created.ID())
	require.NoError(t, err)
	assert.Nil(t, found.AssigneeID())
}

func TestIssueRepository_Delete_RemovesComments(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIssueRepository(db)
	comments := NewCommentRepository(db)
	ctx := context.Background()

	created := createTestIssue(t, repo, 1, "Doomed issue", issue.PriorityLow, 2)
	c, err := issue.NewComment(created.ID(), 2, "soon gone")
	require.NoError(t, err)
	require.NoError(t, comments.Save(ctx, c))

	require.NoError(t, repo.Delete(ctx, created.ID()))

	found, err := repo.GetByID(ctx, created.ID())
	require.NoError(t, err)
	assert.Nil(t, found)

	remaining, err := comments.ListByIssue(ctx, created.ID())
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestIssueRepository_Delete_RollsBackWithCallerTransaction(t *testing.T) {
	gormDB := setupTestDB(t)
	repo := NewIssueRepository(gormDB)
	comments := NewCommentRepository(gormDB)
	tm := shareddb.NewTransactionManager(gormDB)
	ctx := context.Background()

	created := createTestIssue(t, repo, 1, "Survivor issue", issue.PriorityLow, 2)
	c, err := issue.NewComment(created.ID(), 2, "still here")
	require.NoError(t, err)
	require.NoError(t, comments.Save(ctx, c))

	abort := stderrors.New("abort")
	err = tm.RunInTransaction(ctx, func(ctx context.Context) error {
		require.NoError(t, repo.Delete(ctx, created.ID()))
		return abort
	})
	require.ErrorIs(t, err, abort)

	// Issue and comments both come back: the delete joined the caller's
	// transaction and rolled back with it.
	found, err := repo.GetByID(ctx, created.ID())
	require.NoError(t, err)
	require.NotNil(t, found)

	remaining, err := comments.ListByIssue(ctx, created.ID())
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestIssueRepository_List_FiltersCombineWithAND(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIssueRepository(db)
	ctx := context.Background()

	login := createTestIssue(t, repo, 1, "Login bug", issue.PriorityHigh, 2)
	setStatus(t, repo, login, issue.StatusInProgress)
	createTestIssue(t, repo, 1, "UI glitch", issue.PriorityLow, 2)
	apiErr := createTestIssue(t, repo, 1, "API error", issue.PriorityHigh, 3)
	setStatus(t, repo, apiErr, issue.StatusResolved)
	createTestIssue(t, repo, 2, "Login bug elsewhere", issue.PriorityHigh, 2)

	status := issue.StatusInProgress
	priority := issue.PriorityHigh
	items, total, err := repo.List(ctx, 1, issue.Filter{
		Query:    "login",
		Status:   &status,
		Priority: &priority,
		Limit:    50,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, login.ID(), items[0].ID())
}

func TestIssueRepository_List_ScopedToProject(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIssueRepository(db)
	ctx := context.Background()

	createTestIssue(t, repo, 1, "Project one issue", issue.PriorityMedium, 2)
	createTestIssue(t, repo, 2, "Project two issue", issue.PriorityMedium, 2)

	items, total, err := repo.List(ctx, 1, issue.Filter{Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "Project one issue", items[0].Title())
}

func TestIssueRepository_List_TitleSearchIsCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIssueRepository(db)
	ctx := context.Background()

	createTestIssue(t, repo, 1, "Login bug", issue.PriorityHigh, 2)
	createTestIssue(t, repo, 1, "UI glitch", issue.PriorityLow, 2)

	items, total, err := repo.List(ctx, 1, issue.Filter{Query: "LOGIN", Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "Login bug", items[0].Title())
}

func TestIssueRepository_List_SortByPrioritySeverity(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIssueRepository(db)
	ctx := context.Background()

	createTestIssue(t, repo, 1, "Low one", issue.PriorityLow, 2)
	createTestIssue(t, repo, 1, "Critical one", issue.PriorityCritical, 2)
	createTestIssue(t, repo, 1, "Medium one", issue.PriorityMedium, 2)
	createTestIssue(t, repo, 1, "High one", issue.PriorityHigh, 2)

	items, _, err := repo.List(ctx, 1, issue.Filter{Sort: issue.SortPriority, Limit: 50})
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, issue.PriorityCritical, items[0].Priority())
	assert.Equal(t, issue.PriorityHigh, items[1].Priority())
	assert.Equal(t, issue.PriorityMedium, items[2].Priority())
	assert.Equal(t, issue.PriorityLow, items[3].Priority())
}

func TestIssueRepository_List_SortByStatusDeclarationOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIssueRepository(db)
	ctx := context.Background()

	closed := createTestIssue(t, repo, 1, "Closed one", issue.PriorityMedium, 2)
	setStatus(t, repo, closed, issue.StatusClosed)
	createTestIssue(t, repo, 1, "Open one", issue.PriorityMedium, 2)
	resolved := createTestIssue(t, repo, 1, "Resolved one", issue.PriorityMedium, 2)
	setStatus(t, repo, resolved, issue.StatusResolved)
	progress := createTestIssue(t, repo, 1, "In progress one", issue.PriorityMedium, 2)
	setStatus(t, repo, progress, issue.StatusInProgress)

	items, _, err := repo.List(ctx, 1, issue.Filter{Sort: issue.SortStatus, Limit: 50})
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, issue.StatusOpen, items[0].Status())
	assert.Equal(t, issue.StatusInProgress, items[1].Status())
	assert.Equal(t, issue.StatusResolved, items[2].Status())
	assert.Equal(t, issue.StatusClosed, items[3].Status())
}

func TestIssueRepository_List_PaginationKeepsTotal(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIssueRepository(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		createTestIssue(t, repo, 1, "Numbered issue", issue.PriorityMedium, 2)
	}

	items, total, err := repo.List(ctx, 1, issue.Filter{Limit: 2, Offset: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total, "total counts all matches, not the page")
	assert.Len(t, items, 1)
}

func TestCommentRepository_ListByIssue_Ordered(t *testing.T) {
	db := setupTestDB(t)
	issues := NewIssueRepository(db)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	created := createTestIssue(t, issues, 1, "Commented issue", issue.PriorityMedium, 2)

	for _, body := range []string{"first", "second", "third"} {
		c, err := issue.NewComment(created.ID(), 2, body)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, c))
	}

	comments, err := repo.ListByIssue(ctx, created.ID())
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "first", comments[0].Body())
	assert.Equal(t, "third", comments[2].Body())
}
