package types

type TargetKind string

const (
	TargetKindAlias       TargetKind = "alias"
	TargetKindFiles       TargetKind = "files"
	TargetKindLibrary     TargetKind = "library"
	TargetKindBinary      TargetKind = "binary"
	TargetKindTest        TargetKind = "test"
	TargetKindRequirement TargetKind = "python_requirement"
)
