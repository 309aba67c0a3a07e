package common

// Record is a row the sink can insert. SetID receives the primary key the
// database assigned to it.
type Record interface {
	TableName() string
	Columns() []string
	Values() []interface{}
	SetID(id int64)
}

// SameTable reports the table shared by every record, or false if the batch
// mixes tables.
func SameTable(records []Record) (string, bool) {
	if len(records) == 0 {
		return "", false
	}
	table := records[0].TableName()
	for _, r := range records[1:] {
		if r.TableName() != table {
			return "", false
		}
	}
	return table, true
}

// Chunk splits records into slices of at most size elements.
func Chunk(records []Record, size int) [][]Record {
	if size <= 0 {
		size = DefaultBatchSize
	}
	chunks := make([][]Record, 0, (len(records)+size-1)/size)
	for start := 0; start < len(records); start += size {
		end := start + size
		if end > len(records) {
			end = len(records)
		}
		chunks = append(chunks, records[start:end])
	}
	return chunks
}

const DefaultBatchSize = 100
