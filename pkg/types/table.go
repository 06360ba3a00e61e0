package types

type TableName string

const (
	TABLE_MEDICAL_QA     TableName = "aicare_medical_qa"
	TABLE_PATIENT_RECORD TableName = "aicare_patient_record"
)

func (t TableName) Name() string {
	return string(t)
}
