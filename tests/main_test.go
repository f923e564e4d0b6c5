package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nenserver/database"
	"nenserver/restapi"
)

var (
	client *mongo.Client
	store  *database.Store
	router http.Handler
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	uri := os.Getenv("MONGOCONNECTIONSTRING")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	var err error
	client, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database("nenserver_test")

	// start from a clean slate so counts in the tests are deterministic
	if err := db.Drop(ctx); err != nil {
		log.Fatalf("Failed to drop test database: %v", err)
	}

	store = database.NewStore(db)
	router = restapi.NewAPI(store, "").Router()

	code := m.Run()

	if err := db.Drop(ctx); err != nil {
		log.Printf("Failed to drop test database: %v", err)
	}
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("Failed to disconnect: %v", err)
	}

	os.Exit(code)
}

// Helper to make a request against the full router and return the response
func makeRequest(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	} else {
		reqBody = bytes.NewReader([]byte{})
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	return rr
}

// Helper to decode JSON response
func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	if err := json.NewDecoder(rr.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode response: %v (body: %s)", err, rr.Body.String())
	}
}
