// Package fuzztests houses Go fuzz harnesses for the scanner and the parser.
// Its goal is to smoke test robustness and guard against panics or hangs on
// arbitrary inputs.
//
// Назначение: прогонять произвольные байты через FileSet, лексер и парсер и
// проверять, что результат либо ошибка, либо корректное дерево.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
