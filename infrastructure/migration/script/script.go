package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/roi-benchmark-api/infrastructure/database/postgres"
	"github.com/vfg2006/roi-benchmark-api/internal/config"
	"github.com/vfg2006/roi-benchmark-api/pkg/utils"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS ad_methods (
		id         VARCHAR(32) PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS businesses (
		id            VARCHAR(32) PRIMARY KEY,
		name          TEXT NOT NULL,
		business_type TEXT NOT NULL,
		address       TEXT NOT NULL DEFAULT '',
		latitude      DOUBLE PRECISION,
		longitude     DOUBLE PRECISION,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS campaigns (
		id            VARCHAR(32) PRIMARY KEY,
		business_id   VARCHAR(32) NOT NULL REFERENCES businesses (id),
		ad_method_id  VARCHAR(32) NOT NULL REFERENCES ad_methods (id),
		amount_spent  NUMERIC(14, 2) NOT NULL,
		amount_earned NUMERIC(14, 2),
		start_date    DATE NOT NULL,
		end_date      DATE,
		is_active     BOOLEAN NOT NULL DEFAULT TRUE,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_businesses_type ON businesses (business_type)`,
	`CREATE INDEX IF NOT EXISTS idx_campaigns_ad_method ON campaigns (ad_method_id, created_at, id)`,
	`CREATE INDEX IF NOT EXISTS idx_campaigns_business ON campaigns (business_id)`,
}

type seedBusiness struct {
	Key          string
	Name         string
	BusinessType string
	Address      string
	Latitude     *float64
	Longitude    *float64
}

type seedCampaign struct {
	BusinessKey string
	AdMethodKey string
	Spent       string
	Earned      string // vazio = ainda não medida
	StartedDays int
	EndedDays   int // 0 = em andamento
}

var seedAdMethods = map[string]string{
	"social":   "Redes sociais",
	"radio":    "Rádio",
	"flyers":   "Panfletos",
	"search":   "Busca paga",
	"outdoors": "Outdoor",
}

func coords(lat, lon float64) (*float64, *float64) {
	return &lat, &lon
}

func seedBusinesses() []seedBusiness {
	paulistaLat, paulistaLon := coords(-23.5614, -46.6559)
	pinheirosLat, pinheirosLon := coords(-23.5670, -46.6920)
	moocaLat, moocaLon := coords(-23.5587, -46.5996)
	santosLat, santosLon := coords(-23.9608, -46.3336)

	return []seedBusiness{
		{Key: "otica-paulista", Name: "Ótica Paulista", BusinessType: "Retail", Address: "Av. Paulista, 1000", Latitude: paulistaLat, Longitude: paulistaLon},
		{Key: "otica-pinheiros", Name: "Ótica Pinheiros", BusinessType: "Retail", Address: "R. dos Pinheiros, 500", Latitude: pinheirosLat, Longitude: pinheirosLon},
		{Key: "otica-mooca", Name: "Ótica Mooca", BusinessType: "Retail", Address: "R. da Mooca, 200", Latitude: moocaLat, Longitude: moocaLon},
		{Key: "otica-santos", Name: "Ótica Santos", BusinessType: "Retail", Address: "Av. Ana Costa, 80", Latitude: santosLat, Longitude: santosLon},
		{Key: "cantina-paulista", Name: "Cantina Paulista", BusinessType: "Restaurant", Address: "Al. Santos, 45", Latitude: paulistaLat, Longitude: paulistaLon},
		{Key: "loja-online", Name: "Loja Online", BusinessType: "Retail", Address: ""},
	}
}

var seedCampaigns = []seedCampaign{
	{BusinessKey: "otica-paulista", AdMethodKey: "social", Spent: "500.00", Earned: "1200.00", StartedDays: 60, EndedDays: 30},
	{BusinessKey: "otica-paulista", AdMethodKey: "social", Spent: "300.00", StartedDays: 10},
	{BusinessKey: "otica-paulista", AdMethodKey: "radio", Spent: "800.00", Earned: "600.00", StartedDays: 90, EndedDays: 60},
	{BusinessKey: "otica-pinheiros", AdMethodKey: "social", Spent: "100.00", Earned: "240.00", StartedDays: 45, EndedDays: 15},
	{BusinessKey: "otica-pinheiros", AdMethodKey: "flyers", Spent: "200.00", Earned: "300.00", StartedDays: 40, EndedDays: 20},
	{BusinessKey: "otica-mooca", AdMethodKey: "social", Spent: "400.00", Earned: "100.00", StartedDays: 70, EndedDays: 40},
	{BusinessKey: "otica-mooca", AdMethodKey: "search", Spent: "0.00", Earned: "150.00", StartedDays: 20, EndedDays: 5},
	{BusinessKey: "otica-santos", AdMethodKey: "social", Spent: "250.00", Earned: "900.00", StartedDays: 35, EndedDays: 7},
	{BusinessKey: "cantina-paulista", AdMethodKey: "social", Spent: "150.00", Earned: "450.00", StartedDays: 25, EndedDays: 3},
	{BusinessKey: "loja-online", AdMethodKey: "search", Spent: "600.00", Earned: "1500.00", StartedDays: 50, EndedDays: 10},
}

func setupLogger() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de migração...")
}

func generateID() string {
	id, err := utils.GenerateID()
	if err != nil {
		log.Fatalf("ERRO ao gerar ID: %v", err)
	}
	return id
}

func createSchema(tx *sql.Tx) error {
	for _, statement := range schema {
		if _, err := tx.Exec(statement); err != nil {
			return err
		}
	}
	log.Printf("Schema verificado (%d comandos)", len(schema))
	return nil
}

func alreadySeeded(tx *sql.Tx) (bool, error) {
	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM businesses`).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func insertAdMethods(tx *sql.Tx) (map[string]string, error) {
	stmt, err := tx.Prepare(`INSERT INTO ad_methods (id, name) VALUES ($1, $2)`)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	ids := make(map[string]string, len(seedAdMethods))
	for key, name := range seedAdMethods {
		id := generateID()
		if _, err := stmt.Exec(id, name); err != nil {
			return nil, err
		}
		ids[key] = id
	}

	log.Printf("Métodos de anúncio inseridos: %d", len(ids))
	return ids, nil
}

func insertBusinesses(tx *sql.Tx, businesses []seedBusiness) (map[string]string, error) {
	stmt, err := tx.Prepare(`INSERT INTO businesses (id, name, business_type, address, latitude, longitude) VALUES ($1, $2, $3, $4, $5, $6)`)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	ids := make(map[string]string, len(businesses))
	for _, b := range businesses {
		id := generateID()
		if _, err := stmt.Exec(id, b.Name, b.BusinessType, b.Address, b.Latitude, b.Longitude); err != nil {
			return nil, err
		}
		ids[b.Key] = id
	}

	log.Printf("Negócios inseridos: %d", len(ids))
	return ids, nil
}

func insertCampaigns(tx *sql.Tx, businessIDs, adMethodIDs map[string]string, now time.Time) error {
	stmt, err := tx.Prepare(`INSERT INTO campaigns (id, business_id, ad_method_id, amount_spent, amount_earned, start_date, end_date, is_active, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, c := range seedCampaigns {
		earned := decimal.NullDecimal{}
		if c.Earned != "" {
			earned = decimal.NewNullDecimal(decimal.RequireFromString(c.Earned))
		}

		var endDate *time.Time
		if c.EndedDays > 0 {
			end := now.AddDate(0, 0, -c.EndedDays)
			endDate = &end
		}

		// created_at crescente mantém a ordem de empate estável entre execuções
		createdAt := now.Add(time.Duration(i-len(seedCampaigns)) * time.Minute)

		_, err := stmt.Exec(
			generateID(),
			businessIDs[c.BusinessKey],
			adMethodIDs[c.AdMethodKey],
			decimal.RequireFromString(c.Spent),
			earned,
			now.AddDate(0, 0, -c.StartedDays),
			endDate,
			endDate == nil,
			createdAt,
		)
		if err != nil {
			return err
		}
	}

	log.Printf("Campanhas inseridas: %d", len(seedCampaigns))
	return nil
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco: %v", err)
	}
	defer conn.Close()

	startTime := time.Now()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := createSchema(tx); err != nil {
			return err
		}

		seeded, err := alreadySeeded(tx)
		if err != nil {
			return err
		}
		if seeded {
			log.Println("Base já possui negócios, dados de exemplo não serão inseridos")
			return nil
		}

		adMethodIDs, err := insertAdMethods(tx)
		if err != nil {
			return err
		}

		businessIDs, err := insertBusinesses(tx, seedBusinesses())
		if err != nil {
			return err
		}

		return insertCampaigns(tx, businessIDs, adMethodIDs, time.Now().UTC())
	})
	if err != nil {
		log.Fatalf("ERRO na migração, transação revertida: %v", err)
	}

	log.Printf("Migração concluída em %v", time.Since(startTime))
}
