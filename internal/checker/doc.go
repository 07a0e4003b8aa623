// Package checker runs one end-to-end comparison: validate both input paths,
// decode and preprocess the documents, score them with the similarity engine,
// and write the percentage to the result file.
//
// Every run is stamped with a UUID correlation ID carried in the context so
// log lines from document loading, scoring, and result writing can be tied
// together, including when many runs share a batch worker pool.
package checker
