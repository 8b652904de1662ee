package repository

import "libraryhub/internal/http-api/models"

// Row mappers decode one result row, under a column-alias prefix, into one
// entity. They never attach nested relationship objects; that is the
// repository's job, since one joined row can carry the columns of several
// entities. Mapping is atomic: the first conversion failure aborts it.

func MapBook(row Row, prefix string) (*models.Book, error) {
	var err error
	book := &models.Book{}
	if book.ID, err = Int64Column(row, prefix+"_id"); err != nil {
		return nil, err
	}
	if book.Title, err = StringColumn(row, prefix+"_title"); err != nil {
		return nil, err
	}
	if book.PublicationDate, err = DateColumn(row, prefix+"_publication_date"); err != nil {
		return nil, err
	}
	if book.CopiesOwned, err = IntColumn(row, prefix+"_copies_owned"); err != nil {
		return nil, err
	}
	if book.Status, err = StatusColumn(row, prefix+"_status"); err != nil {
		return nil, err
	}
	if book.CategoryID, err = Int64Column(row, prefix+"_category_id"); err != nil {
		return nil, err
	}
	return book, nil
}

func MapAuthor(row Row, prefix string) (*models.Author, error) {
	var err error
	author := &models.Author{}
	if author.ID, err = Int64Column(row, prefix+"_id"); err != nil {
		return nil, err
	}
	if author.FirstName, err = StringColumn(row, prefix+"_first_name"); err != nil {
		return nil, err
	}
	if author.LastName, err = StringColumn(row, prefix+"_last_name"); err != nil {
		return nil, err
	}
	return author, nil
}

func MapCategory(row Row, prefix string) (*models.Category, error) {
	var err error
	category := &models.Category{}
	if category.ID, err = Int64Column(row, prefix+"_id"); err != nil {
		return nil, err
	}
	if category.Name, err = StringColumn(row, prefix+"_name"); err != nil {
		return nil, err
	}
	return category, nil
}

func MapReader(row Row, prefix string) (*models.Reader, error) {
	var err error
	reader := &models.Reader{}
	if reader.ID, err = Int64Column(row, prefix+"_id"); err != nil {
		return nil, err
	}
	if reader.FirstName, err = StringColumn(row, prefix+"_first_name"); err != nil {
		return nil, err
	}
	if reader.LastName, err = StringColumn(row, prefix+"_last_name"); err != nil {
		return nil, err
	}
	if reader.Email, err = StringColumn(row, prefix+"_email"); err != nil {
		return nil, err
	}
	if reader.JoinedDate, err = DateColumn(row, prefix+"_joined_date"); err != nil {
		return nil, err
	}
	return reader, nil
}

func MapLoan(row Row, prefix string) (*models.Loan, error) {
	var err error
	loan := &models.Loan{}
	if loan.ID, err = Int64Column(row, prefix+"_id"); err != nil {
		return nil, err
	}
	if loan.LoanDate, err = DateColumn(row, prefix+"_loan_date"); err != nil {
		return nil, err
	}
	if loan.ReturnDate, err = DateColumn(row, prefix+"_return_date"); err != nil {
		return nil, err
	}
	if loan.BookID, err = Int64Column(row, prefix+"_book_id"); err != nil {
		return nil, err
	}
	if loan.MemberID, err = Int64Column(row, prefix+"_member_id"); err != nil {
		return nil, err
	}
	return loan, nil
}
