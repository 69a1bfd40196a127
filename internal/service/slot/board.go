package slot

import (
	"fmt"

	"fluttering_riches/internal/fair"
	"fluttering_riches/internal/model"
)

// minStreamSize - минимальная длина потока для заполнения поля
const minStreamSize = model.GridCells * fair.ChunkSize

// AssembleGrid заполняет поле 3x3 построчно символами из потока байт.
// Маппятся все полные чанки по 4 байта, на поле ставятся первые 9
func AssembleGrid(stream []byte, table model.SymbolTable) (model.Grid, error) {
	var grid model.Grid
	if len(stream) < minStreamSize {
		return grid, fmt.Errorf("%w: got %d bytes, need %d", model.ErrGridAssemblyShortfall, len(stream), minStreamSize)
	}
	if len(table) == 0 {
		return grid, fmt.Errorf("%w: no symbols", model.ErrInvalidSymbolTable)
	}

	mapper := fair.NewMapper(table.Weights())

	// Маппим все чанки, лишние отбрасываем
	chunks := len(stream) / fair.ChunkSize
	indexes := make([]int, chunks)
	for i := 0; i < chunks; i++ {
		indexes[i] = mapper.Map(stream[i*fair.ChunkSize : (i+1)*fair.ChunkSize])
	}

	for cell := 0; cell < model.GridCells; cell++ {
		grid[cell/model.GridCols][cell%model.GridCols] = table[indexes[cell]].ID
	}
	return grid, nil
}
