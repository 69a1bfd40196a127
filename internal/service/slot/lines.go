package slot

import "fluttering_riches/internal/model"

// PlayLines - координаты (row, col) ячеек каждой линии.
// Строки сверху вниз, столбцы слева направо, затем обе диагонали
var PlayLines = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// EvaluateLines проверяет каждую линию независимо.
// Линия выигрывает, когда три ее ячейки совпадают; каждая такая линия
// попадает в результат, даже если символ у нескольких линий общий
func EvaluateLines(grid model.Grid) []model.LineWin {
	var wins []model.LineWin
	for i, line := range PlayLines {
		first := grid[line[0][0]][line[0][1]]
		if first == grid[line[1][0]][line[1][1]] && first == grid[line[2][0]][line[2][1]] {
			wins = append(wins, model.LineWin{
				Line:   i + 1,
				Symbol: first,
			})
		}
	}
	return wins
}

// WinningSymbols - символы выигрышных линий в порядке линий
func WinningSymbols(wins []model.LineWin) []string {
	symbols := make([]string, len(wins))
	for i, w := range wins {
		symbols[i] = w.Symbol
	}
	return symbols
}
