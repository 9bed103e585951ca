package main

import (
	"bytes"
	"csvcel/contracts"
	"io"
	"log/slog"
	"net/http"
	"time"

	json "github.com/bytedance/sonic"
)

const DefaultWebhookWorkersCount = 5

const webhookQueueSize = 20

const webhookClientTimeout = time.Second * 5

type ResultSendCommand struct {
	Webhook string
	SheetId string
	Report  *contracts.SheetReport
}

// ResultDispatcher POSTs evaluated sheet reports to per-upload webhook URLs.
// Delivery is fire-and-forget: failures are logged, never retried.
type ResultDispatcher struct {
	queue   chan ResultSendCommand
	workers int
	logger  *slog.Logger
}

func NewResultDispatcher(workers int, logger *slog.Logger) *ResultDispatcher {
	if workers <= 0 {
		workers = DefaultWebhookWorkersCount
	}

	return &ResultDispatcher{
		queue:   make(chan ResultSendCommand, webhookQueueSize),
		workers: workers,
		logger:  logger,
	}
}

func (dispatcher *ResultDispatcher) Notify(sheetId string, webhookUrl string, report *contracts.SheetReport) {
	if webhookUrl == "" {
		return
	}

	go func() {
		dispatcher.queue <- ResultSendCommand{
			Webhook: webhookUrl,
			SheetId: sheetId,
			Report:  report,
		}
	}()
}

func (dispatcher *ResultDispatcher) Start() {
	for i := 0; i < dispatcher.workers; i++ {
		go dispatcher.runSenderWorker()
	}
}

func (dispatcher *ResultDispatcher) Close() {
	close(dispatcher.queue)
}

func (dispatcher *ResultDispatcher) runSenderWorker() {
	client := &http.Client{
		Timeout: webhookClientTimeout,
	}

	for command := range dispatcher.queue {
		payload, _ := json.Marshal(command.Report)
		response, err := client.Post(command.Webhook, "application/json", bytes.NewBuffer(payload))

		if err != nil {
			dispatcher.logger.Error("webhook send failed", "sheet", command.SheetId, "webhook", command.Webhook, "error", err)
			continue
		}

		if response.StatusCode >= 300 {
			dispatcher.logger.Warn("unexpected webhook response status", "sheet", command.SheetId, "webhook", command.Webhook, "status", response.Status)
		}

		_, _ = io.Copy(io.Discard, response.Body)
		_ = response.Body.Close()
	}
}
