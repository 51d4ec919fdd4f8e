package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GouravKumar19/slooze/entity"
)

func TestPaymentMethodWritesAreAdminOnly(t *testing.T) {
	f := setupFixture(t)
	svc := f.paymentService()
	in := &CreatePaymentMethodIn{Type: "CREDIT_CARD", LastFour: "0001"}

	_, err := svc.Create(claimsFor(f.managerIN), in)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.Create(claimsFor(f.memberIN), in)
	assert.ErrorIs(t, err, ErrForbidden)

	pm, err := svc.Create(claimsFor(f.admin), in)
	require.NoError(t, err)
	assert.Equal(t, f.admin.ID, pm.UserID)
	assert.False(t, pm.IsDefault)
}

func TestNewDefaultClearsPriorDefaults(t *testing.T) {
	f := setupFixture(t)
	svc := f.paymentService()
	admin := claimsFor(f.admin)

	// the fixture seeds one default for the admin already
	pm, err := svc.Create(admin, &CreatePaymentMethodIn{Type: "DEBIT_CARD", LastFour: "2222", IsDefault: true})
	require.NoError(t, err)
	assert.True(t, pm.IsDefault)

	var defaults []entity.PaymentMethod
	require.NoError(t, f.db.Where("user_id = ? AND is_default = ?", f.admin.ID, true).Find(&defaults).Error)
	require.Len(t, defaults, 1)
	assert.Equal(t, pm.ID, defaults[0].ID)
}

func TestUpdatePaymentMethod(t *testing.T) {
	f := setupFixture(t)
	svc := f.paymentService()
	admin := claimsFor(f.admin)

	extra, err := svc.Create(admin, &CreatePaymentMethodIn{Type: "DEBIT_CARD", LastFour: "3333"})
	require.NoError(t, err)

	// promoting to default demotes the seeded one
	isDefault := true
	updated, err := svc.Update(admin, &UpdatePaymentMethodIn{ID: extra.ID, IsDefault: &isDefault})
	require.NoError(t, err)
	assert.True(t, updated.IsDefault)

	var defaults int64
	f.db.Model(&entity.PaymentMethod{}).
		Where("user_id = ? AND is_default = ?", f.admin.ID, true).
		Count(&defaults)
	assert.Equal(t, int64(1), defaults)

	// field updates are partial
	newType := "UPI"
	updated, err = svc.Update(admin, &UpdatePaymentMethodIn{ID: extra.ID, Type: &newType})
	require.NoError(t, err)
	assert.Equal(t, "UPI", updated.Type)
	assert.Equal(t, "3333", updated.LastFour)

	bad := "12345"
	_, err = svc.Update(admin, &UpdatePaymentMethodIn{ID: extra.ID, LastFour: &bad})
	assert.ErrorIs(t, err, ErrValidation)

	// another user's method reads as absent, not forbidden
	other := f.defaultPaymentMethodID(t, f.managerIN.ID)
	_, err = svc.Update(admin, &UpdatePaymentMethodIn{ID: other, Type: &newType})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(admin, &UpdatePaymentMethodIn{ID: 9999, Type: &newType})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeletePaymentMethod(t *testing.T) {
	f := setupFixture(t)
	svc := f.paymentService()
	admin := claimsFor(f.admin)

	pm, err := svc.Create(admin, &CreatePaymentMethodIn{Type: "DEBIT_CARD", LastFour: "4444"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(claimsFor(f.managerUS), pm.ID), ErrForbidden)
	require.NoError(t, svc.Delete(admin, pm.ID))
	assert.ErrorIs(t, svc.Delete(admin, pm.ID), ErrNotFound)
}

func TestListPaymentMethodsDefaultFirst(t *testing.T) {
	f := setupFixture(t)
	svc := f.paymentService()
	admin := claimsFor(f.admin)

	_, err := svc.Create(admin, &CreatePaymentMethodIn{Type: "DEBIT_CARD", LastFour: "5555"})
	require.NoError(t, err)

	methods, err := svc.List(f.admin.ID)
	require.NoError(t, err)
	require.Len(t, methods, 2)
	assert.True(t, methods[0].IsDefault)
	assert.Equal(t, "4242", methods[0].LastFour)
}
