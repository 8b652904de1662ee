package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookEqual(t *testing.T) {
	seq := NewSequence(1)
	book1 := RandomBook(seq)
	book2 := &Book{ID: book1.ID}
	assert.True(t, book1.Equal(book2))

	book2 = RandomBook(seq)
	assert.False(t, book1.Equal(book2))

	// no id on either side: equal only by reference
	book1 = &Book{}
	book2 = &Book{}
	assert.True(t, book1.Equal(book1))
	assert.False(t, book1.Equal(book2))
	assert.False(t, book1.Equal(nil))
}

func TestBookSetCategorySyncsForeignKey(t *testing.T) {
	seq := NewSequence(10)
	book := RandomBook(seq)
	category := RandomCategory(seq)

	book.SetCategory(category)
	assert.Equal(t, category, book.Category)
	assert.Equal(t, *category.ID, *book.CategoryID)

	book.SetCategory(nil)
	assert.Nil(t, book.Category)
	assert.Nil(t, book.CategoryID)
}

func TestBookAuthorIDs(t *testing.T) {
	seq := NewSequence(100)
	book := RandomBook(seq)
	a := RandomAuthor(seq)
	b := RandomAuthor(seq)
	book.Authors = []Author{*a, *b, {FirstName: ref("unsaved")}}

	assert.ElementsMatch(t, []int64{*a.ID, *b.ID}, book.AuthorIDs())
}

func TestBookValidate(t *testing.T) {
	valid := func() *Book {
		return &Book{
			Title:       ref("Dune"),
			CopiesOwned: ref(3),
			Status:      ref(StatusAvailable),
		}
	}

	assert.NoError(t, valid().Validate())

	book := valid()
	book.Title = nil
	assert.Error(t, book.Validate())

	book = valid()
	book.CopiesOwned = ref(-1)
	assert.Error(t, book.Validate())

	book = valid()
	book.Status = ref(BookStatus("LOST"))
	assert.Error(t, book.Validate())

	var verr *ValidationError
	book = valid()
	book.CopiesOwned = nil
	assert.ErrorAs(t, book.Validate(), &verr)
	assert.Equal(t, "copiesOwned", verr.Field)
}
