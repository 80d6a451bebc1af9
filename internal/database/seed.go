package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type seedDeveloper struct {
	Name       string
	Email      string
	Seniority  string
	HourlyRate float64
}

type seedProject struct {
	Name        string
	Description string
	TotalHours  float64
	Cell        int64
	Client      int64
	Service     int64
}

// seedTimeEntry references projects and developers by their position in
// the seed slices.
type seedTimeEntry struct {
	Project     int
	Developer   int
	Description string
	Hours       float64
	Date        string
}

var seedDevelopers = []seedDeveloper{
	{Name: "João Silva", Email: "joao.silva@email.com", Seniority: "senior", HourlyRate: 120},
	{Name: "Maria Santos", Email: "maria.santos@email.com", Seniority: "pleno", HourlyRate: 85},
	{Name: "Pedro Costa", Email: "pedro.costa@email.com", Seniority: "junior", HourlyRate: 60},
}

var seedProjects = []seedProject{
	{
		Name:        "Sistema E-commerce",
		Description: "Desenvolvimento de plataforma de e-commerce completa com React e Node.js",
		TotalHours:  120, Cell: 101, Client: 1001, Service: 2001,
	},
	{
		Name:        "App Mobile Delivery",
		Description: "Aplicativo mobile para delivery de comida com React Native",
		TotalHours:  80, Cell: 102, Client: 1002, Service: 2002,
	},
	{
		Name:        "Dashboard Analytics",
		Description: "Dashboard para análise de dados e relatórios com D3.js",
		TotalHours:  60, Cell: 103, Client: 1003, Service: 2003,
	},
}

var seedTimeEntries = []seedTimeEntry{
	{0, 1, "Implementação do sistema de autenticação e cadastro de usuários", 8, "28/06/2024"},
	{0, 0, "Desenvolvimento da API de produtos e categorias", 6, "29/06/2024"},
	{1, 1, "Criação das telas de cadastro de produtos no app mobile", 7, "29/06/2024"},
	{1, 2, "Setup inicial do projeto React Native e navegação", 4, "30/06/2024"},
	{1, 2, "Implementação das telas de login e cadastro", 5, "30/06/2024"},
	{2, 0, "Configuração do ambiente de desenvolvimento e estrutura base", 3, "30/06/2024"},
	{0, 0, "Integração com gateway de pagamento e testes", 6, "30/06/2024"},
	{2, 1, "Desenvolvimento da tela de listagem de restaurantes", 5, "30/06/2024"},
	{2, 2, "Criação dos componentes de gráficos e métricas", 4, "30/06/2024"},
}

// SeedSummary reports how many rows Seed inserted.
type SeedSummary struct {
	Developers  int `json:"developers"`
	Projects    int `json:"projects"`
	TimeEntries int `json:"timeEntries"`
}

// Seed inserts the fixed sample data set in one transaction.
//
// It expects empty tables; run Reset first.
func (db *Database) Seed(ctx context.Context) (*SeedSummary, error) {
	summary := &SeedSummary{}

	err := db.WithTx(ctx, func(ctx context.Context) error {
		q := Conn(ctx, db.Pool)

		developerIDs := make([]int64, len(seedDevelopers))
		batch := &pgx.Batch{}
		for i, d := range seedDevelopers {
			batch.Queue(
				`INSERT INTO developers (name, email, seniority, hourly_rate) VALUES ($1, $2, $3, $4) RETURNING id`,
				d.Name, d.Email, d.Seniority, d.HourlyRate,
			).QueryRow(func(row pgx.Row) error {
				return row.Scan(&developerIDs[i])
			})
		}
		for _, p := range seedProjects {
			batch.Queue(
				`INSERT INTO projects (name, description, total_hours, cell, client, service) VALUES ($1, $2, $3, $4, $5, $6)`,
				p.Name, p.Description, p.TotalHours, p.Cell, p.Client, p.Service,
			)
		}
		if err := q.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("seeding developers and projects: %w", err)
		}

		rows, err := q.Query(ctx, `SELECT id FROM projects ORDER BY id`)
		if err != nil {
			return fmt.Errorf("reading seeded projects: %w", err)
		}
		projectIDs, err := pgx.CollectRows(rows, pgx.RowTo[int64])
		if err != nil {
			return fmt.Errorf("reading seeded projects: %w", err)
		}
		if len(projectIDs) != len(seedProjects) {
			return fmt.Errorf("expected %d projects after seeding, found %d; reset the database first",
				len(seedProjects), len(projectIDs))
		}

		entries := &pgx.Batch{}
		for _, e := range seedTimeEntries {
			entries.Queue(
				`INSERT INTO time_entries (project_id, developer_id, description, hours, date) VALUES ($1, $2, $3, $4, $5)`,
				projectIDs[e.Project], developerIDs[e.Developer], e.Description, e.Hours, e.Date,
			)
		}
		if err := q.SendBatch(ctx, entries).Close(); err != nil {
			return fmt.Errorf("seeding time entries: %w", err)
		}

		summary.Developers = len(seedDevelopers)
		summary.Projects = len(seedProjects)
		summary.TimeEntries = len(seedTimeEntries)
		return nil
	})
	if err != nil {
		return nil, err
	}

	db.log.Info().
		Int("developers", summary.Developers).
		Int("projects", summary.Projects).
		Int("time_entries", summary.TimeEntries).
		Msg("database seeded")

	return summary, nil
}
