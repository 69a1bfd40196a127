package model

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestSymbolTable_Validate(t *testing.T) {
	one := decimal.NewFromInt(1)
	tests := []struct {
		name    string
		table   SymbolTable
		wantErr bool
	}{
		{name: "ok", table: SymbolTable{{ID: "a", Weight: 0.5, Multiplier: one}, {ID: "b", Weight: 0.5, Multiplier: decimal.Zero}}},
		{name: "empty", table: nil, wantErr: true},
		{name: "empty id", table: SymbolTable{{Weight: 1, Multiplier: one}}, wantErr: true},
		{name: "duplicate id", table: SymbolTable{{ID: "a", Weight: 1, Multiplier: one}, {ID: "a", Weight: 1, Multiplier: one}}, wantErr: true},
		{name: "zero weight", table: SymbolTable{{ID: "a", Weight: 0, Multiplier: one}}, wantErr: true},
		{name: "negative weight", table: SymbolTable{{ID: "a", Weight: -1, Multiplier: one}}, wantErr: true},
		{name: "nan weight", table: SymbolTable{{ID: "a", Weight: math.NaN(), Multiplier: one}}, wantErr: true},
		{name: "infinite weight", table: SymbolTable{{ID: "a", Weight: 1, Multiplier: one}, {ID: "b", Weight: math.Inf(1), Multiplier: one}}, wantErr: true},
		{name: "negative multiplier", table: SymbolTable{{ID: "a", Weight: 1, Multiplier: one.Neg()}}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if tt.wantErr != (err != nil) {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidSymbolTable) {
				t.Errorf("Validate() error = %v, want ErrInvalidSymbolTable", err)
			}
		})
	}
}
