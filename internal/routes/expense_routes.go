package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/handlers"
	"backoffice/internal/refcheck"
	"backoffice/internal/repository"
)

func RegisterExpenseRoutes(router chi.Router, db *sql.DB, registry *refcheck.Registry) {
	categoryRepo := repository.NewExpenseCategoryRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	expenseHandler := handlers.NewExpenseHandler(categoryRepo, expenseRepo, registry)

	router.Route("/expense-categories", func(r chi.Router) {
		r.Get("/", expenseHandler.ListCategories)
		r.Post("/", expenseHandler.CreateCategory)

		r.Route("/{id}", func(r chi.Router) {
			r.Put("/", expenseHandler.UpdateCategory)
			r.Delete("/", expenseHandler.DeleteCategory)
		})
	})

	router.Route("/expenses", func(r chi.Router) {
		r.Get("/", expenseHandler.ListExpenses)
		r.Post("/", expenseHandler.CreateExpense)
		r.Delete("/{id}", expenseHandler.DeleteExpense)
	})
}
