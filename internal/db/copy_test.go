package db

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/gyeh/cnpjload/internal/model"
)

func TestChannelSource_DrainsChannel(t *testing.T) {
	ch := make(chan *model.StagingRow, 2)
	batch := uuid.New()
	ch <- &model.StagingRow{IngestBatchID: batch, CNPJ: "11222333000181"}
	ch <- &model.StagingRow{IngestBatchID: batch, CNPJ: "12ABC34501DE35"}
	close(ch)

	src := NewChannelSource(ch)
	var got []string
	for src.Next() {
		vals, err := src.Values()
		if err != nil {
			t.Fatalf("Values: %v", err)
		}
		if len(vals) != len(model.StagingColumns()) {
			t.Fatalf("got %d values, want %d", len(vals), len(model.StagingColumns()))
		}
		got = append(got, vals[4].(string))
	}
	if src.Err() != nil {
		t.Fatalf("Err: %v", src.Err())
	}
	if len(got) != 2 || got[0] != "11222333000181" || got[1] != "12ABC34501DE35" {
		t.Errorf("got %v", got)
	}
}

func TestChannelSource_Abort(t *testing.T) {
	ch := make(chan *model.StagingRow)
	src := NewChannelSource(ch)
	boom := errors.New("boom")

	go func() {
		src.Abort(boom)
		close(ch)
	}()

	if src.Next() {
		t.Fatal("expected Next to return false after close")
	}
	if !errors.Is(src.Err(), boom) {
		t.Errorf("Err = %v, want boom", src.Err())
	}
}
