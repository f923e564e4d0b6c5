package tests

import (
	"context"
	"net/http"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"nenserver/models"
)

// Tests the root endpoint
func TestRootHandler(t *testing.T) {
	rr := makeRequest(t, "GET", "/api/", nil)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}

	var response map[string]string
	decodeResponse(t, rr, &response)

	if response["message"] != "Hunter x Nen RPG System API" {
		t.Errorf("Unexpected message: %q", response["message"])
	}
}

// Tests the health check endpoint
func TestHealthHandler(t *testing.T) {
	rr := makeRequest(t, "GET", "/api/health", nil)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}

	var response map[string]string
	decodeResponse(t, rr, &response)

	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %q", response["status"])
	}
}

// A new character must come back structurally complete: default skills,
// factions, nen block and resource pools all initialized.
func TestCreateCharacterDefaults(t *testing.T) {
	rr := makeRequest(t, "POST", "/api/characters", map[string]string{
		"name":   "Gon",
		"userId": "user-defaults",
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d (body: %s)", rr.Code, rr.Body.String())
	}

	var character models.Character
	decodeResponse(t, rr, &character)

	if character.ID == "" {
		t.Error("Character id was not generated")
	}
	if character.Level != 1 {
		t.Errorf("Expected level 1, got %d", character.Level)
	}
	if len(character.Skills) != 20 {
		t.Errorf("Expected 20 default skills, got %d", len(character.Skills))
	}
	if _, ok := character.Skills["Controle de Nen"]; !ok {
		t.Error("Default skills missing 'Controle de Nen'")
	}
	if len(character.Factions) != 10 {
		t.Errorf("Expected 10 default factions, got %d", len(character.Factions))
	}
	if _, ok := character.Factions["hunter_association"]; !ok {
		t.Error("Default factions missing 'hunter_association'")
	}
	if character.Nen.BasicTechniques.Ten != "Amador" {
		t.Errorf("Expected Ten 'Amador', got %q", character.Nen.BasicTechniques.Ten)
	}
	if len(character.Nen.AdvancedTechniques) != 7 {
		t.Errorf("Expected 7 advanced techniques, got %d", len(character.Nen.AdvancedTechniques))
	}
	if character.Resources.PV != (models.ResourceValue{Current: 10, Max: 10}) {
		t.Errorf("Expected pv 10/10, got %+v", character.Resources.PV)
	}
	if character.Resources.Defense != 10 {
		t.Errorf("Expected defense 10, got %d", character.Resources.Defense)
	}
}

func TestCreateCharacterRequiresName(t *testing.T) {
	rr := makeRequest(t, "POST", "/api/characters", map[string]string{"userId": "u"})

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestListCharactersByUser(t *testing.T) {
	makeRequest(t, "POST", "/api/characters", map[string]string{"name": "Killua", "userId": "user-list"})
	makeRequest(t, "POST", "/api/characters", map[string]string{"name": "Kurapika", "userId": "user-list"})
	makeRequest(t, "POST", "/api/characters", map[string]string{"name": "Leorio", "userId": "someone-else"})

	rr := makeRequest(t, "GET", "/api/characters?userId=user-list", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var characters []models.Character
	decodeResponse(t, rr, &characters)

	if len(characters) != 2 {
		t.Errorf("Expected 2 characters for user-list, got %d", len(characters))
	}
	for _, c := range characters {
		if c.UserID != "user-list" {
			t.Errorf("Character %s belongs to %q, filter leaked", c.Name, c.UserID)
		}
	}
}

// The update endpoint merges only the fields present in the patch.
func TestUpdateCharacterPartialMerge(t *testing.T) {
	rr := makeRequest(t, "POST", "/api/characters", map[string]string{"name": "Hisoka", "userId": "user-patch"})
	var created models.Character
	decodeResponse(t, rr, &created)

	rr = makeRequest(t, "PUT", "/api/characters/"+created.ID, map[string]interface{}{
		"name":   "Hisoka Morow",
		"level":  5,
		"origin": "Glam Gas Land",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d (body: %s)", rr.Code, rr.Body.String())
	}

	var updated models.Character
	decodeResponse(t, rr, &updated)

	if updated.Name != "Hisoka Morow" || updated.Level != 5 || updated.Origin != "Glam Gas Land" {
		t.Errorf("Patch not applied: %+v", updated)
	}
	if len(updated.Skills) != 20 {
		t.Errorf("Untouched skills were lost, got %d", len(updated.Skills))
	}
	if updated.UpdatedAt == created.UpdatedAt {
		t.Error("updatedAt was not refreshed")
	}
	if updated.CreatedAt != created.CreatedAt {
		t.Error("createdAt must not change on update")
	}
}

// Fields outside the allow-list are dropped rather than merged.
func TestUpdateCharacterIgnoresUnknownFields(t *testing.T) {
	rr := makeRequest(t, "POST", "/api/characters", map[string]string{"name": "Chrollo", "userId": "user-unknown"})
	var created models.Character
	decodeResponse(t, rr, &created)

	rr = makeRequest(t, "PUT", "/api/characters/"+created.ID, map[string]interface{}{
		"id":        "overwritten",
		"createdAt": "overwritten",
		"garbage":   true,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var updated models.Character
	decodeResponse(t, rr, &updated)

	if updated.ID != created.ID {
		t.Error("id must not be updatable")
	}
	if updated.CreatedAt != created.CreatedAt {
		t.Error("createdAt must not be updatable")
	}
}

func TestUpdateCharacterNotFound(t *testing.T) {
	rr := makeRequest(t, "PUT", "/api/characters/no-such-id", map[string]string{"name": "x"})

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rr.Code)
	}
}

func TestDeleteCharacter(t *testing.T) {
	rr := makeRequest(t, "POST", "/api/characters", map[string]string{"name": "Pitou", "userId": "user-del"})
	var created models.Character
	decodeResponse(t, rr, &created)

	rr = makeRequest(t, "DELETE", "/api/characters/"+created.ID, nil)
	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}

	rr = makeRequest(t, "DELETE", "/api/characters/"+created.ID, nil)
	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 on second delete, got %d", rr.Code)
	}

	rr = makeRequest(t, "GET", "/api/characters/"+created.ID, nil)
	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 after delete, got %d", rr.Code)
	}
}

func TestRollHistory(t *testing.T) {
	roll := map[string]interface{}{
		"characterId":   "roll-char-1",
		"characterName": "Gon",
		"rolls":         []int{12, 7},
		"highest":       12,
		"skillName":     "Duelo",
		"attributeName": "FOR",
		"baseResult":    14,
		"finalResult":   16,
	}

	rr := makeRequest(t, "POST", "/api/rolls", roll)
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d (body: %s)", rr.Code, rr.Body.String())
	}

	var created models.RollRecord
	decodeResponse(t, rr, &created)
	if created.ID == "" || created.Timestamp == "" {
		t.Error("Server must assign id and timestamp")
	}

	roll["characterId"] = "roll-char-2"
	makeRequest(t, "POST", "/api/rolls", roll)

	rr = makeRequest(t, "GET", "/api/rolls?characterId=roll-char-1", nil)
	var rolls []models.RollRecord
	decodeResponse(t, rr, &rolls)
	if len(rolls) != 1 {
		t.Errorf("Expected 1 roll for roll-char-1, got %d", len(rolls))
	}

	rr = makeRequest(t, "DELETE", "/api/rolls?characterId=roll-char-1", nil)
	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}

	rr = makeRequest(t, "GET", "/api/rolls?characterId=roll-char-1", nil)
	decodeResponse(t, rr, &rolls)
	if len(rolls) != 0 {
		t.Errorf("Expected roll history cleared, got %d entries", len(rolls))
	}

	// the other character's history survives a scoped clear
	rr = makeRequest(t, "GET", "/api/rolls?characterId=roll-char-2", nil)
	decodeResponse(t, rr, &rolls)
	if len(rolls) != 1 {
		t.Errorf("Expected roll-char-2 history untouched, got %d entries", len(rolls))
	}
}

func TestThreatLifecycle(t *testing.T) {
	rr := makeRequest(t, "POST", "/api/threats", map[string]string{
		"campaignId": "camp-threat-1",
		"name":       "Chimera Soldier",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d (body: %s)", rr.Code, rr.Body.String())
	}

	var threat models.Threat
	decodeResponse(t, rr, &threat)

	if threat.Combat.Damage != "2d8+5" {
		t.Errorf("Expected default damage 2d8+5, got %q", threat.Combat.Damage)
	}
	if threat.DueloAttribute != "FOR" {
		t.Errorf("Expected default duelo attribute FOR, got %q", threat.DueloAttribute)
	}
	if len(threat.Skills) != 6 {
		t.Errorf("Expected 6 default threat skills, got %d", len(threat.Skills))
	}

	rr = makeRequest(t, "PUT", "/api/threats/"+threat.ID, map[string]interface{}{
		"name":             "Chimera Officer",
		"generalAbilities": "Commands lesser ants",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var updated models.Threat
	decodeResponse(t, rr, &updated)
	if updated.Name != "Chimera Officer" {
		t.Errorf("Patch not applied: %+v", updated)
	}
	if updated.Combat.Damage != "2d8+5" {
		t.Error("Untouched combat block was lost")
	}

	rr = makeRequest(t, "GET", "/api/threats?campaignId=camp-threat-1", nil)
	var threats []models.Threat
	decodeResponse(t, rr, &threats)
	if len(threats) != 1 {
		t.Errorf("Expected 1 threat in campaign, got %d", len(threats))
	}

	rr = makeRequest(t, "DELETE", "/api/threats/"+threat.ID, nil)
	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}
}

// Importing clones everything except id, campaign scope and creation time.
func TestImportThreat(t *testing.T) {
	rr := makeRequest(t, "POST", "/api/threats", map[string]string{
		"campaignId": "camp-import-src",
		"name":       "Royal Guard",
	})
	var source models.Threat
	decodeResponse(t, rr, &source)

	makeRequest(t, "PUT", "/api/threats/"+source.ID, map[string]interface{}{
		"generalAbilities": "Terrifying aura",
	})

	rr = makeRequest(t, "POST", "/api/threats/import/"+source.ID+"?targetCampaignId=camp-import-dst", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d (body: %s)", rr.Code, rr.Body.String())
	}

	var clone models.Threat
	decodeResponse(t, rr, &clone)

	if clone.ID == source.ID {
		t.Error("Clone must get a fresh id")
	}
	if clone.CampaignID != "camp-import-dst" {
		t.Errorf("Clone in wrong campaign: %q", clone.CampaignID)
	}
	if clone.Name != "Royal Guard" || clone.GeneralAbilities != "Terrifying aura" {
		t.Errorf("Clone did not carry fields over: %+v", clone)
	}

	// the source stays where it was
	var stored models.Threat
	err := store.Threats().FindOne(context.Background(), bson.M{"id": source.ID}).Decode(&stored)
	if err != nil {
		t.Fatalf("Source threat lookup failed: %v", err)
	}
	if stored.CampaignID != "camp-import-src" {
		t.Errorf("Source threat moved campaigns: %q", stored.CampaignID)
	}
}

func TestImportThreatNotFound(t *testing.T) {
	rr := makeRequest(t, "POST", "/api/threats/import/no-such-threat?targetCampaignId=camp-x", nil)

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rr.Code)
	}
}
