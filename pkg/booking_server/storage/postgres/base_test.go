package postgres_test

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oceanbooking/oceanbooking/pkg/util"
	"github.com/stretchr/testify/suite"
)

type BaseTestSuite struct {
	suite.Suite
	ctx    context.Context
	pgPool *pgxpool.Pool
}

func (s *BaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort, err := strconv.Atoi(os.Getenv("DATABASE_PORT"))
	if err != nil {
		dbPort = 5432
	}
	dbName := os.Getenv("DATABASE_NAME")
	userName := os.Getenv("DATABASE_USER")
	password := os.Getenv("DATABASE_PASSWORD")

	config := util.PostgresDatabaseConfig{
		Host:     dbHost,
		Port:     dbPort,
		Database: dbName,
		User:     userName,
		Password: password,
		SSLMode:  "disable",
		PoolSize: 5,
	}

	pool, err := util.NewPostgresDBPool(config)
	s.Require().NoError(err)
	s.pgPool = pool

	// Children before parents so the deletes satisfy foreign keys.
	tableNames := []string{
		"shipment_event_outbox",
		"shipment_event",
		"transport_event",
		"shipment_transport",
		"transport",
		"transport_call",
		"voyage",
		"charge",
		"confirmed_equipment",
		"shipment_carrier_clause",
		"carrier_clause",
		"shipment_cutoff_time",
		"shipment",
		"displayed_address",
		"document_party",
		"party_identifying_code",
		"party_contact_details",
		"party",
		"shipment_location",
		"requested_equipment_equipment",
		"requested_equipment",
		"reference",
		"value_added_service_request",
		"commodity",
		"booking",
		"vessel",
		"location",
		"address",
	}
	for _, tableName := range tableNames {
		_, err := pool.Exec(context.Background(), fmt.Sprintf(`DELETE FROM %q`, tableName))
		s.Require().NoError(err)
	}
}

func (s *BaseTestSuite) TearDownTest() {
	s.pgPool.Close()
}
