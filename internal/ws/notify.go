package ws

import (
	"encoding/json"
	"time"

	"workforce/internal/repository"
)

const (
	EventTaskCreated = "task_created"
	EventTaskUpdated = "task_updated"
	EventTaskDeleted = "task_deleted"
)

type TaskEvent struct {
	Type      string `json:"type"`
	TaskID    int64  `json:"task_id"`
	WorkerID  int64  `json:"worker_id"`
	Title     string `json:"title,omitempty"`
	Status    string `json:"status,omitempty"`
	Priority  string `json:"priority,omitempty"`
	Timestamp string `json:"timestamp"`
}

// TaskBroadcaster adapts the hub to the task layer's notifier interface.
type TaskBroadcaster struct {
	hub *Hub
}

func NewTaskBroadcaster(hub *Hub) *TaskBroadcaster {
	return &TaskBroadcaster{hub: hub}
}

func (b *TaskBroadcaster) TaskCreated(task repository.Task) {
	b.publish(taskEvent(EventTaskCreated, task))
}

func (b *TaskBroadcaster) TaskUpdated(task repository.Task) {
	b.publish(taskEvent(EventTaskUpdated, task))
}

func (b *TaskBroadcaster) TaskDeleted(taskID, workerID int64) {
	b.publish(TaskEvent{
		Type:      EventTaskDeleted,
		TaskID:    taskID,
		WorkerID:  workerID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (b *TaskBroadcaster) publish(evt TaskEvent) {
	if b == nil || b.hub == nil {
		return
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return
	}
	b.hub.Broadcast(payload)
}

func taskEvent(eventType string, task repository.Task) TaskEvent {
	return TaskEvent{
		Type:      eventType,
		TaskID:    task.ID,
		WorkerID:  task.WorkerID,
		Title:     task.Title,
		Status:    task.Status,
		Priority:  task.Priority,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
