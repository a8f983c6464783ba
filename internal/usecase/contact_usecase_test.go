package usecase

import (
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dapurkita/internal/domain/entity"
	"dapurkita/pkg/errors"
)

func newContactFixture() *ContactUseCase {
	return NewContactUseCase(newFakeUserRepo(testUsers()...))
}

func contactIDs(contacts []*entity.ContactSummary) []string {
	return lo.Map(contacts, func(c *entity.ContactSummary, _ int) string { return c.ID })
}

func TestListContactsFoodieSeesOnlyCooks(t *testing.T) {
	uc := newContactFixture()

	contacts, err := uc.ListContacts(context.Background(), "foodie-1", "", 0)
	require.NoError(t, err)

	// Alphabetical by display name: Budi before Sari.
	assert.Equal(t, []string{"cook-2", "cook-1"}, contactIDs(contacts))
	for _, contact := range contacts {
		assert.Equal(t, entity.RoleCook, contact.Role)
	}
}

func TestListContactsCookSeesOnlyFoodies(t *testing.T) {
	uc := newContactFixture()

	contacts, err := uc.ListContacts(context.Background(), "cook-1", "", 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"foodie-1", "foodie-2"}, contactIDs(contacts))
}

func TestListContactsAdminSeesEveryoneButSelf(t *testing.T) {
	uc := newContactFixture()

	contacts, err := uc.ListContacts(context.Background(), "admin-1", "", 0)
	require.NoError(t, err)

	ids := contactIDs(contacts)
	assert.Len(t, ids, 4)
	assert.NotContains(t, ids, "admin-1")
}

func TestListContactsSearchMatchesStoreName(t *testing.T) {
	uc := newContactFixture()

	// "dapur" only appears in Sari's store name.
	contacts, err := uc.ListContacts(context.Background(), "foodie-1", "DAPUR", 0)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "cook-1", contacts[0].ID)
	assert.Equal(t, "Dapur Sari", contacts[0].StoreName)
}

func TestListContactsSearchPartialStoreName(t *testing.T) {
	uc := newContactFixture()

	// "kit" matches only the store named "Budi's Kitchen".
	contacts, err := uc.ListContacts(context.Background(), "foodie-1", "kit", 0)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "cook-2", contacts[0].ID)
}

func TestListContactsSearchMatchesEmail(t *testing.T) {
	uc := newContactFixture()

	contacts, err := uc.ListContacts(context.Background(), "cook-1", "alice@", 0)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "foodie-1", contacts[0].ID)
}

func TestListContactsSearchNoMatch(t *testing.T) {
	uc := newContactFixture()

	contacts, err := uc.ListContacts(context.Background(), "foodie-1", "zzz", 0)
	require.NoError(t, err)
	assert.Empty(t, contacts)
}

func TestListContactsLimit(t *testing.T) {
	uc := newContactFixture()

	contacts, err := uc.ListContacts(context.Background(), "admin-1", "", 2)
	require.NoError(t, err)
	assert.Len(t, contacts, 2)
}

func TestListContactsLabels(t *testing.T) {
	uc := newContactFixture()

	contacts, err := uc.ListContacts(context.Background(), "admin-1", "", 0)
	require.NoError(t, err)

	labels := lo.Map(contacts, func(c *entity.ContactSummary, _ int) string { return c.Label })
	assert.Contains(t, labels, "Sari (Kitchen)")
	assert.Contains(t, labels, "Alice (Foodie)")
}

func TestListContactsUnknownRequester(t *testing.T) {
	uc := newContactFixture()

	_, err := uc.ListContacts(context.Background(), "ghost", "", 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestResolveContact(t *testing.T) {
	uc := newContactFixture()

	contact, err := uc.ResolveContact(context.Background(), "cook-1")
	require.NoError(t, err)
	assert.Equal(t, "Sari", contact.DisplayName)
	assert.Equal(t, "Sari (Kitchen)", contact.Label)

	_, err = uc.ResolveContact(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
