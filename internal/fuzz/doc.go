// Package fuzztests houses Go fuzz harnesses for the tokenizer and the
// translator. Their goal is to guard against panics and broken round trips on
// arbitrary input.
//
// Назначение: прогонять произвольные байты через FileSet, лексер и переводчик,
// проверяя инварианты сегментации и сохранность непереведённого текста.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/translate,
// internal/dataset, internal/testkit.
package fuzztests
