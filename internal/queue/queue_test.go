package queue

import (
	"testing"

	"github.com/rabbitmq/amqp091-go"
)

func TestRetryCount(t *testing.T) {
	tests := []struct {
		name    string
		headers amqp091.Table
		want    int32
	}{
		{
			name:    "no headers",
			headers: nil,
			want:    0,
		},
		{
			name:    "header missing",
			headers: amqp091.Table{"other": int32(3)},
			want:    0,
		},
		{
			name:    "int32 as published",
			headers: amqp091.Table{"x-retries": int32(4)},
			want:    4,
		},
		{
			name:    "int64 after a broker round trip",
			headers: amqp091.Table{"x-retries": int64(9)},
			want:    9,
		},
		{
			name:    "unexpected type",
			headers: amqp091.Table{"x-retries": "7"},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RetryCount(tt.headers); got != tt.want {
				t.Fatalf("RetryCount(%v) = %d, want %d", tt.headers, got, tt.want)
			}
		})
	}
}
