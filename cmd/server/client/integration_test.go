//go:build integration

package client

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	v1alpha1 "github.com/Hagni1/jurney/internal/handlers/journey/v1alpha1"
)

func TestFirstStageIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	grpcServerAddress := os.Getenv("GRPC_SERVER_ADDRESS")
	if grpcServerAddress == "" {
		grpcServerAddress = "localhost:50051"
	}
	conn, err := grpc.NewClient(grpcServerAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer func() {
		if err := conn.Close(); err != nil {
			t.Logf("Failed to close connection: %v", err)
		}
	}()

	client := v1alpha1.NewJourneyServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	nickname := fmt.Sprintf("it-%d", time.Now().UnixNano())
	created, err := client.CreateCharacter(ctx, &v1alpha1.CreateCharacterRequest{Nickname: nickname})
	require.NoError(t, err)
	assert.Equal(t, 1, created.Character.Level)
	assert.Equal(t, 0, created.Character.CompletedStage)

	fought, err := client.Fight(ctx, &v1alpha1.FightRequest{CharacterID: created.Character.ID, Stage: 1})
	require.NoError(t, err)
	assert.True(t, fought.Combat.IsWin, "a fresh character should clear stage 1")
	assert.Equal(t, 1, fought.Character.CompletedStage)

	archived, err := client.GetCombat(ctx, &v1alpha1.GetCombatRequest{CombatID: fought.Combat.ID})
	require.NoError(t, err)
	assert.Equal(t, fought.Combat.Seed, archived.Combat.Seed)
}
