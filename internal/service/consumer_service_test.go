package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"profai-be/internal/dto"
	"profai-be/internal/entity"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestConsumerPersistsGenerationAndDebitsCredits(t *testing.T) {
	userId := uuid.New()
	factory, uow := newFakeFactory(&entity.Profile{Id: userId, Credits: 10})

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	consumer := NewConsumerService(pubSub, "generation.completed", factory, noopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, consumer.Consume(ctx))

	payload, err := json.Marshal(dto.PublishGenerationMessage{
		RecordId:       uuid.New(),
		UserId:         userId,
		Tool:           "questoes-ia",
		Discipline:     "Matemática",
		Grade:          "9º ano",
		Subject:        "Frações",
		Params:         json.RawMessage(`{"count":10}`),
		ResultText:     "questões geradas",
		CreditsCharged: 1,
	})
	require.NoError(t, err)

	msg := message.NewMessage(watermill.NewUUID(), payload)
	require.NoError(t, pubSub.Publish("generation.completed", msg))

	require.Eventually(t, func() bool {
		return len(uow.records.records) == 1
	}, 2*time.Second, 10*time.Millisecond)

	record := uow.records.records[0]
	require.Equal(t, "questoes-ia", record.Tool)
	require.Equal(t, userId, record.UserId)
	require.Equal(t, 1, record.CreditsCharged)
	require.JSONEq(t, `{"count":10}`, string(record.Params))

	require.Equal(t, []int{1}, uow.profiles.debits)
	require.Equal(t, 9, uow.profiles.profile.Credits)
	require.True(t, uow.committed)
}

func TestConsumerAcksInvalidPayload(t *testing.T) {
	factory, uow := newFakeFactory(&entity.Profile{Id: uuid.New(), Credits: 10})

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	consumer := NewConsumerService(pubSub, "generation.completed", factory, noopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, consumer.Consume(ctx))

	msg := message.NewMessage(watermill.NewUUID(), []byte("not json"))
	require.NoError(t, pubSub.Publish("generation.completed", msg))

	select {
	case <-msg.Acked():
	case <-time.After(2 * time.Second):
		t.Fatal("invalid payload was not acked")
	}
	require.Empty(t, uow.records.records)
	require.Empty(t, uow.profiles.debits)
}
