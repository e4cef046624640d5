//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"werkstatt/domain"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself, the supervisor does.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for logging and supervision, the Worker interface carries no name.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink receives thread updates produced by the reply workers.
type EventSink interface {
	Consume(ctx context.Context, e domain.ThreadUpdated) error
}

type IRegistry interface {
	GetSinksForThread(key domain.ThreadKey) []EventSink
	Subscribe(participantID string, key domain.ThreadKey, sink EventSink)
	Unsubscribe(participantID string, key domain.ThreadKey)
}

// ThreadReplier produces the counterpart answer for a queued job and persists it.
type ThreadReplier interface {
	Reply(ctx context.Context, job domain.ReplyJob) (domain.ChatThread, error)
}

type IOrchestrator interface {
	RegisterSinks(sink ...EventSink)
	Dispatch(job domain.ReplyJob) error
	RegisterParticipant(pID string, key domain.ThreadKey, sink EventSink)
	UnregisterParticipant(pID string, key domain.ThreadKey)
	Start(ctx context.Context, replier ThreadReplier) error
	Stop()
}
