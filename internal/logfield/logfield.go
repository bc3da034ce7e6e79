package lf

import "go.uber.org/zap"

const (
	FieldModule     = "module"
	FieldRollNumber = "roll_number"
	FieldName       = "name"
	FieldGrade      = "grade"
	FieldBackend    = "backend"
	FieldPath       = "path"
	FieldCount      = "count"
	FieldLine       = "line"
)

func Module(module string) zap.Field {
	return zap.String(FieldModule, module)
}

func RollNumber(roll string) zap.Field {
	return zap.String(FieldRollNumber, roll)
}

func Name(name string) zap.Field {
	return zap.String(FieldName, name)
}

func Grade(grade string) zap.Field {
	return zap.String(FieldGrade, grade)
}

func Backend(backend string) zap.Field {
	return zap.String(FieldBackend, backend)
}

func Path(path string) zap.Field {
	return zap.String(FieldPath, path)
}

func Count(count int) zap.Field {
	return zap.Int(FieldCount, count)
}

func Line(line int) zap.Field {
	return zap.Int(FieldLine, line)
}
