package request

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Run("plain date", func(t *testing.T) {
		got, err := ParseDate("2025-07-01")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("rfc3339 timestamp", func(t *testing.T) {
		got, err := ParseDate("2025-07-01T14:30:00-03:00")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, 7, 1, 17, 30, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("empty means not informed", func(t *testing.T) {
		got, err := ParseDate("   ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.IsZero() {
			t.Fatalf("expected zero time, got %v", got)
		}
	})

	t.Run("unrecognized layout", func(t *testing.T) {
		if _, err := ParseDate("01/07/2025"); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})
}

func TestCreateOSRequest_ToEntity(t *testing.T) {
	t.Run("trims and maps fields", func(t *testing.T) {
		r := CreateOSRequest{
			Numero:            " OS-2025-001 ",
			CCA:               " CCA-104 ",
			Cliente:           " Vale Norte ",
			Disciplina:        "mecanica",
			FamiliaSAO:        "manutencao",
			Descricao:         " troca de rolamento ",
			DataCompromissada: "2025-07-20",
			ValorHoraHH:       85,
			ResponsavelObra:   "Joana Lima",
		}

		os, err := r.ToEntity()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if os.Numero != "OS-2025-001" || os.CCA != "CCA-104" || os.Cliente != "Vale Norte" {
			t.Fatalf("fields not trimmed: %+v", os)
		}
		if os.Descricao != "troca de rolamento" {
			t.Fatalf("descricao not trimmed: %q", os.Descricao)
		}
		want := time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC)
		if !os.DataCompromissada.Equal(want) {
			t.Fatalf("expected %v, got %v", want, os.DataCompromissada)
		}
		if os.ValorHoraHH != 85 {
			t.Fatalf("unexpected valor hora: %.2f", os.ValorHoraHH)
		}
	})

	t.Run("invalid compromissada date", func(t *testing.T) {
		r := CreateOSRequest{CCA: "CCA-104", Cliente: "Vale Norte", Disciplina: "mecanica", Descricao: "x", DataCompromissada: "20/07/2025"}
		if _, err := r.ToEntity(); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})
}
