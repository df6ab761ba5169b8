package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"burgerhouse/internal/service"
)

func TestMenuCreateUnknownMember(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := f.mustBurger(t, "Classic", 8)

	_, err := f.menus.Create(ctx, service.MenuInput{
		Name:          "Broken",
		BurgerIDs:     []uint{b.ID},
		ComplementIDs: []uint{77},
	})
	var berr *service.BadRequestError
	require.ErrorAs(t, err, &berr)
	assert.Contains(t, berr.Msg, "77")

	// Nothing was persisted.
	list, err := f.menus.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMenuCreateAbsorbsDuplicateIDs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := f.mustBurger(t, "Classic", 8)
	c := f.mustComplement(t, "Cola", "DRINK", 2)

	m, err := f.menus.Create(ctx, service.MenuInput{
		Name:          "Combo",
		BurgerIDs:     []uint{b.ID, b.ID, b.ID},
		ComplementIDs: []uint{c.ID, c.ID},
	})
	require.NoError(t, err)
	assert.Len(t, m.Burgers, 1)
	assert.Len(t, m.Complements, 1)
	assert.Equal(t, 9.0, m.Price)
}

func TestMenuCreateRejectsEmptyBundle(t *testing.T) {
	f := newFixture(t)

	_, err := f.menus.Create(context.Background(), service.MenuInput{Name: "Empty"})
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "price")
}

func TestMenuCreateWithArchivedMember(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := f.mustBurger(t, "Classic", 8)
	require.NoError(t, f.burgers.Archive(ctx, b.ID))

	// Archived items still resolve by id; only listings hide them.
	m, err := f.menus.Create(ctx, service.MenuInput{
		Name:      "Retro",
		BurgerIDs: []uint{b.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, 7.2, m.Price)
}

func TestMenuUpdateReplacesMembershipAndReprices(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b1 := f.mustBurger(t, "Classic", 8)
	b2 := f.mustBurger(t, "Double", 12)
	c := f.mustComplement(t, "Cola", "DRINK", 2)

	m, err := f.menus.Create(ctx, service.MenuInput{
		Name:          "Combo",
		BurgerIDs:     []uint{b1.ID},
		ComplementIDs: []uint{c.ID},
	})
	require.NoError(t, err)
	require.Equal(t, 9.0, m.Price)

	ids := []uint{b2.ID}
	updated, err := f.menus.Update(ctx, m.ID, service.MenuPatch{BurgerIDs: &ids})
	require.NoError(t, err)
	require.Len(t, updated.Burgers, 1)
	assert.Equal(t, b2.ID, updated.Burgers[0].ID)
	// Complements untouched, price recomputed: (12 + 2) * 0.9
	assert.Len(t, updated.Complements, 1)
	assert.Equal(t, 12.6, updated.Price)
}

func TestMenuUpdateScalarsKeepPrice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := f.mustBurger(t, "Classic", 8)
	c := f.mustComplement(t, "Cola", "DRINK", 2)
	m, err := f.menus.Create(ctx, service.MenuInput{
		Name:          "Combo",
		BurgerIDs:     []uint{b.ID},
		ComplementIDs: []uint{c.ID},
	})
	require.NoError(t, err)

	// A later price change on a member does not ripple into the menu.
	newPrice := 20.0
	_, err = f.burgers.Update(ctx, b.ID, service.BurgerPatch{Price: &newPrice})
	require.NoError(t, err)

	name := "Renamed Combo"
	updated, err := f.menus.Update(ctx, m.ID, service.MenuPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed Combo", updated.Name)
	assert.Equal(t, 9.0, updated.Price)
}

func TestMenuUpdateBadIDLeavesMenuUntouched(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := f.mustBurger(t, "Classic", 8)
	c := f.mustComplement(t, "Cola", "DRINK", 2)
	m, err := f.menus.Create(ctx, service.MenuInput{
		Name:          "Combo",
		BurgerIDs:     []uint{b.ID},
		ComplementIDs: []uint{c.ID},
	})
	require.NoError(t, err)

	bad := []uint{999}
	name := "Should Not Stick"
	_, err = f.menus.Update(ctx, m.ID, service.MenuPatch{Name: &name, BurgerIDs: &bad})
	var berr *service.BadRequestError
	require.ErrorAs(t, err, &berr)

	got, err := f.menus.Get(m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Combo", got.Name)
	require.Len(t, got.Burgers, 1)
	assert.Equal(t, b.ID, got.Burgers[0].ID)
}

func TestMenuUpdateClearBurgersOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := f.mustBurger(t, "Classic", 8)
	c := f.mustComplement(t, "Cola", "DRINK", 2)
	m, err := f.menus.Create(ctx, service.MenuInput{
		Name:          "Combo",
		BurgerIDs:     []uint{b.ID},
		ComplementIDs: []uint{c.ID},
	})
	require.NoError(t, err)

	empty := []uint{}
	updated, err := f.menus.Update(ctx, m.ID, service.MenuPatch{BurgerIDs: &empty})
	require.NoError(t, err)
	assert.Empty(t, updated.Burgers)
	require.Len(t, updated.Complements, 1)
	// Only the drink remains: 2 * 0.9
	assert.Equal(t, 1.8, updated.Price)
}

func TestMenuArchive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := f.mustBurger(t, "Classic", 8)
	m, err := f.menus.Create(ctx, service.MenuInput{Name: "Combo", BurgerIDs: []uint{b.ID}})
	require.NoError(t, err)

	require.NoError(t, f.menus.Archive(ctx, m.ID))
	require.NoError(t, f.menus.Archive(ctx, m.ID))

	list, err := f.menus.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	// Still addressable by id.
	got, err := f.menus.Get(m.ID)
	require.NoError(t, err)
	assert.True(t, got.Archived)

	err = f.menus.Archive(ctx, 999)
	var nf *service.NotFoundError
	assert.ErrorAs(t, err, &nf)
}
