package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"libraryhub/database"
	"libraryhub/internal/config"
	"libraryhub/internal/http-api/models"
	"libraryhub/internal/http-api/repository"
)

// seed wipes the tables and loads a small recognizable data set. Meant for
// local development against a throwaway database.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := database.ConnectDB(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	defer pool.Close()

	em := repository.NewEntityManager(pool)
	books := repository.NewBookRepository(pool, em)
	authors := repository.NewAuthorRepository(pool, em)
	categories := repository.NewCategoryRepository(pool, em)
	readers := repository.NewReaderRepository(pool, em)
	loans := repository.NewLoanRepository(pool, em)

	// children before parents, junction rows first
	for _, table := range []string{"loan", "rel_book__author", "book", "author", "category", "reader"} {
		if err := em.DeleteAll(ctx, table); err != nil {
			log.Fatalf("could not reset %s: %v", table, err)
		}
	}

	fiction := &models.Category{Name: ref("Fiction")}
	if fiction, err = categories.Save(ctx, fiction); err != nil {
		log.Fatalf("seed category: %v", err)
	}

	herbert := &models.Author{FirstName: ref("Frank"), LastName: ref("Herbert")}
	if herbert, err = authors.Save(ctx, herbert); err != nil {
		log.Fatalf("seed author: %v", err)
	}

	dune := &models.Book{
		Title:           ref("Dune"),
		PublicationDate: ref(models.NewDate(1965, time.August, 1)),
		CopiesOwned:     ref(3),
		Status:          ref(models.StatusAvailable),
		Authors:         []models.Author{*herbert},
	}
	dune.SetCategory(fiction)
	if dune, err = books.Save(ctx, dune); err != nil {
		log.Fatalf("seed book: %v", err)
	}

	ada := &models.Reader{
		FirstName:  ref("Ada"),
		LastName:   ref("Lovelace"),
		Email:      ref("ada@example.com"),
		JoinedDate: ref(models.DateOf(time.Now())),
	}
	if ada, err = readers.Save(ctx, ada); err != nil {
		log.Fatalf("seed reader: %v", err)
	}

	loan := &models.Loan{LoanDate: ref(models.DateOf(time.Now()))}
	loan.SetBook(dune)
	loan.SetMember(ada)
	if _, err = loans.Save(ctx, loan); err != nil {
		log.Fatalf("seed loan: %v", err)
	}

	logger.Info("seeded database",
		"category", *fiction.ID, "author", *herbert.ID, "book", *dune.ID, "reader", *ada.ID)
}

func ref[T any](v T) *T { return &v }
