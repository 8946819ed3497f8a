// Helpers for running the service against real containers. Used by the
// integration tests and by the standalone cmd/testcontainers runner.
// Expects environment variables to be loaded from .env files.

package helpers

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/speccs/assetdb/data"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
)

type TestContainers struct {
	Network          *testcontainers.DockerNetwork
	DBContainer      testcontainers.Container
	AssetDBContainer testcontainers.Container

	// Host-mapped endpoints for test processes
	DBHost  string
	DBPort  string
	APIBase string
}

func (tc *TestContainers) Terminate(t *testing.T) {
	ctx := context.Background()
	if tc.AssetDBContainer != nil {
		if err := tc.AssetDBContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate AssetDB: %v", err)
		}
	}
	if tc.DBContainer != nil {
		if err := tc.DBContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate MariaDB: %v", err)
		}
	}
	if tc.Network != nil {
		if err := tc.Network.Remove(ctx); err != nil {
			logMessage(t, "Failed to remove network: %v", err)
		}
	}
}

// CreateDBContainer starts just the MariaDB container and provisions the
// assetdb schema from the embedded DDL.
func CreateDBContainer(t *testing.T) (*TestContainers, error) {
	ctx := context.Background()
	tc := &TestContainers{}

	nw, err := network.New(ctx)
	if err != nil {
		exitWithError(t, err, "Failed to create network")
	}
	tc.Network = nw

	dbImage := getenvDefault("DB_IMAGE", "mariadb:11")
	dbAlias := getenvDefault("DB_HOST", "mariadb")
	tcpDbPort, err := nat.NewPort("tcp", getenvDefault("DB_PORT", "3306"))
	if err != nil {
		tc.Terminate(t)
		exitWithError(t, err, "Failed to create DB port")
	}

	dbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        dbImage,
			ExposedPorts: []string{string(tcpDbPort)},
			Env: map[string]string{
				"MARIADB_ROOT_PASSWORD": getenvDefault("DB_ROOT_PASSWORD", "rootpass"),
				"MARIADB_DATABASE":      getenvDefault("DB_DATABASE", "assetdb"),
				"MARIADB_USER":          getenvDefault("DB_USER", "assetdb_app"),
				"MARIADB_PASSWORD":      getenvDefault("DB_PASSWORD", "apppass"),
			},
			WaitingFor: wait.ForListeningPort(tcpDbPort).WithStartupTimeout(60 * time.Second),
			Networks:   []string{nw.Name},
			NetworkAliases: map[string][]string{
				nw.Name: {dbAlias},
			},
		},
		Started: true,
	})
	if err != nil {
		tc.Terminate(t)
		exitWithError(t, err, "Failed to start MariaDB")
	}
	tc.DBContainer = dbContainer

	host, _ := dbContainer.Host(ctx)
	port, _ := dbContainer.MappedPort(ctx, tcpDbPort)
	tc.DBHost = host
	tc.DBPort = port.Port()

	if err := provisionSchema(tc.DBHost, tc.DBPort); err != nil {
		tc.Terminate(t)
		exitWithError(t, err, "Failed to provision schema")
	}

	return tc, nil
}

// CreateAllTestContainers starts the full stack: MariaDB plus the service
// image built from the repository Dockerfile.
func CreateAllTestContainers(t *testing.T) (*TestContainers, error) {
	ctx := context.Background()

	tc, err := CreateDBContainer(t)
	if err != nil {
		return nil, err
	}

	imageName := "assetdb-test:latest"
	haveImage, err := imageExists(ctx, imageName)
	if err != nil {
		tc.Terminate(t)
		exitWithError(t, err, "Failed to check if image exists")
	}

	apiPort := getenvDefault("PORT", "3000")
	tcpAPIPort, err := nat.NewPort("tcp", apiPort)
	if err != nil {
		tc.Terminate(t)
		exitWithError(t, err, "Failed to create API port")
	}

	request := testcontainers.ContainerRequest{
		ExposedPorts: []string{string(tcpAPIPort)},
		Env: map[string]string{
			"DB_TYPE":             "mysql",
			"DB_HOST":             getenvDefault("DB_HOST", "mariadb"),
			"DB_PORT":             getenvDefault("DB_PORT", "3306"),
			"DB_DATABASE":         getenvDefault("DB_DATABASE", "assetdb"),
			"DB_USER":             getenvDefault("DB_USER", "assetdb_app"),
			"DB_PASSWORD":         getenvDefault("DB_PASSWORD", "apppass"),
			"DB_CONNECTION_LIMIT": getenvDefault("DB_CONNECTION_LIMIT", "5"),
			"PORT":                apiPort,
		},
		WaitingFor: wait.ForHTTP("/metrics").WithPort(tcpAPIPort).WithStartupTimeout(30 * time.Second),
		Networks:   []string{tc.Network.Name},
	}

	if haveImage {
		request.Image = imageName
	} else {
		sessionID := uuid.New().String()
		buildContext := getenvDefault("TESTCONTAINERS_BUILD_CONTEXT", "../..")
		request.FromDockerfile = testcontainers.FromDockerfile{
			Context:    buildContext,
			Dockerfile: "Dockerfile",
			Repo:       "assetdb-test",
			Tag:        "latest",
			BuildArgs: map[string]*string{
				"RESOURCE_REAPER_SESSION_ID": &sessionID,
			},
		}
	}

	apiContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: request,
		Started:          true,
	})
	if err != nil {
		tc.Terminate(t)
		exitWithError(t, err, "Failed to start AssetDB")
	}
	tc.AssetDBContainer = apiContainer

	apiHost, _ := apiContainer.Host(ctx)
	mappedAPIPort, _ := apiContainer.MappedPort(ctx, tcpAPIPort)
	tc.APIBase = fmt.Sprintf("http://%s:%s", apiHost, mappedAPIPort.Port())
	logMessage(t, "API_BASE=%s", tc.APIBase)

	return tc, nil
}

// provisionSchema runs the embedded DDL against the fresh database as root.
func provisionSchema(host, port string) error {
	dsn := fmt.Sprintf("root:%s@tcp(%s:%s)/%s?multiStatements=true",
		getenvDefault("DB_ROOT_PASSWORD", "rootpass"),
		host, port,
		getenvDefault("DB_DATABASE", "assetdb"),
	)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	deadline := time.Now().Add(60 * time.Second)
	for {
		if err = db.Ping(); err == nil {
			break
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("database never became reachable: %w", err)
		}
		time.Sleep(time.Second)
	}

	for _, script := range []string{data.InitdbMariaDBTables, data.InitdbMariaDBPrivileges} {
		for _, stmt := range splitStatements(script) {
			if _, err := db.Exec(stmt); err != nil {
				return fmt.Errorf("ddl statement failed: %w", err)
			}
		}
	}
	return nil
}

func splitStatements(script string) []string {
	var out []string
	for _, stmt := range strings.Split(script, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}

func imageExists(ctx context.Context, imageName string) (bool, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return false, err
	}
	defer cli.Close()

	images, err := cli.ImageList(ctx, image.ListOptions{})
	if err != nil {
		return false, err
	}
	for _, img := range images {
		for _, tag := range img.RepoTags {
			if tag == imageName {
				return true, nil
			}
		}
	}
	return false, nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// logMessage logs through the test when available, stdout otherwise,
// so the standalone runner can share these helpers.
func logMessage(t *testing.T, format string, args ...interface{}) {
	if t != nil {
		t.Logf(format, args...)
		return
	}
	fmt.Printf(format+"\n", args...)
}

func exitWithError(t *testing.T, err error, message string) {
	if t != nil {
		t.Fatalf("%s: %v", message, err)
		return
	}
	fmt.Printf("%s: %v\n", message, err)
	os.Exit(1)
}
