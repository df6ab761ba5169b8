package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"burgerhouse/internal/service"
)

func TestBurgerCreateValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.burgers.Create(service.BurgerInput{Name: "X", Price: 0})
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "price")
}

func TestBurgerUpdatePartial(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := f.mustBurger(t, "Classic", 8)

	newPrice := 8.5
	updated, err := f.burgers.Update(ctx, b.ID, service.BurgerPatch{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, "Classic", updated.Name)
	assert.Equal(t, 8.5, updated.Price)
}

func TestBurgerUpdateRejectsInvalidPatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := f.mustBurger(t, "Classic", 8)

	bad := 0.0
	_, err := f.burgers.Update(ctx, b.ID, service.BurgerPatch{Price: &bad})
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "price")

	// Still the original price.
	list, err := f.burgers.ListActive()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 8.0, list[0].Price)
}

func TestBurgerUpdateNotFound(t *testing.T) {
	f := newFixture(t)
	name := "Ghost"
	_, err := f.burgers.Update(context.Background(), 42, service.BurgerPatch{Name: &name})
	var nf *service.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestBurgerArchiveHidesFromListing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := f.mustBurger(t, "Classic", 8)
	f.mustBurger(t, "Cheese", 9)

	require.NoError(t, f.burgers.Archive(ctx, b.ID))

	list, err := f.burgers.ListActive()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Cheese", list[0].Name)

	// Archiving again is a no-op, not an error.
	require.NoError(t, f.burgers.Archive(ctx, b.ID))
}

func TestComplementTypeEnum(t *testing.T) {
	f := newFixture(t)

	_, err := f.complements.Create(service.ComplementInput{Name: "Chips", Price: 2, Type: "SNACK"})
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "type")

	for _, typ := range []string{"DRINK", "SIDE", "DESSERT"} {
		_, err := f.complements.Create(service.ComplementInput{Name: "Item " + typ, Price: 2, Type: typ})
		assert.NoError(t, err)
	}
}

func TestComplementUpdateType(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c := f.mustComplement(t, "Cola", "DRINK", 2)

	typ := "DESSERT"
	updated, err := f.complements.Update(ctx, c.ID, service.ComplementPatch{Type: &typ})
	require.NoError(t, err)
	assert.Equal(t, "DESSERT", updated.Type)

	bad := "SNACK"
	_, err = f.complements.Update(ctx, c.ID, service.ComplementPatch{Type: &bad})
	var verr *service.ValidationError
	assert.ErrorAs(t, err, &verr)
}
