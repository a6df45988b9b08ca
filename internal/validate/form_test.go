package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldErrors(t *testing.T, err error) FieldErrors {
	t.Helper()
	var fe FieldErrors
	require.True(t, errors.As(err, &fe), "expected FieldErrors, got %v", err)
	return fe
}

func TestOrderForm(t *testing.T) {

	t.Run("lowercase bag number is accepted after normalize", func(t *testing.T) {
		form := OrderForm{BagNo: "b-1", Clothes: 3}
		form.Normalize()
		assert.NoError(t, Struct(&form))
		assert.Equal(t, "B-1", form.BagNo)
	})

	t.Run("bad bag number and count", func(t *testing.T) {
		form := OrderForm{BagNo: "BB-1", Clothes: 51}
		form.Normalize()
		fe := fieldErrors(t, Struct(&form))
		assert.Equal(t, "Invalid format. Use B-001 or G-001", fe["bagNo"])
		assert.Equal(t, "Must be between 1 and 50", fe["numberOfClothes"])
	})

	t.Run("zero count", func(t *testing.T) {
		form := OrderForm{BagNo: "G-2"}
		fe := fieldErrors(t, Struct(&form))
		assert.Contains(t, fe, "numberOfClothes")
		assert.NotContains(t, fe, "bagNo")
	})
}

func TestWashermanForms(t *testing.T) {

	t.Run("create needs password", func(t *testing.T) {
		fe := fieldErrors(t, Struct(&WashermanForm{Username: "ram"}))
		assert.Equal(t, "This field is required", fe["password"])
	})

	t.Run("short username", func(t *testing.T) {
		fe := fieldErrors(t, Struct(&WashermanForm{Username: "ab", Password: "123456"}))
		assert.Equal(t, "Must be at least 3 characters", fe["username"])
	})

	t.Run("update with empty password", func(t *testing.T) {
		assert.NoError(t, Struct(&WashermanUpdateForm{Username: "ram"}))
	})

	t.Run("update with short password", func(t *testing.T) {
		fe := fieldErrors(t, Struct(&WashermanUpdateForm{Username: "ram", Password: "123"}))
		assert.Contains(t, fe, "password")
	})
}

func TestStudentForm(t *testing.T) {
	form := StudentForm{BagNo: "g-7", Name: "Asha", Email: "asha@campus.edu", Password: "pw"}
	form.Normalize()
	assert.NoError(t, Struct(&form))

	fe := fieldErrors(t, Struct(&StudentForm{BagNo: "G7", Name: "Asha", Email: "nope"}))
	assert.Len(t, fe, 3)
	assert.Equal(t, "Enter a valid email address", fe["email"])
}

func TestStatusForm(t *testing.T) {
	form := StatusForm{Status: "inprogress"}
	form.Normalize()
	assert.NoError(t, Struct(&form))

	fe := fieldErrors(t, Struct(&StatusForm{Status: "DONE"}))
	assert.Contains(t, fe["status"], "Must be one of")
}
