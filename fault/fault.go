// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ExistsError("already initialised")
	ErrBinaryChunkOutOfRange  = LengthError("binary chunk exceeds declared length")
	ErrConfigurationNotTable  = InvalidError("configuration did not return a table")
	ErrDescriptorNotFound     = NotFoundError("type descriptor not found")
	ErrDrawingNotFound        = NotFoundError("drawing not found")
	ErrDuplicateEntry         = ExistsError("duplicate dictionary entry")
	ErrDuplicateTag           = ExistsError("duplicate type tag")
	ErrDuplicateTypeName      = ExistsError("duplicate type name")
	ErrEntryNotFound          = NotFoundError("dictionary entry not found")
	ErrFieldNotFound          = NotFoundError("field not found")
	ErrFieldNotSettable       = InvalidError("field is computed and cannot be set")
	ErrFlagNotFound           = NotFoundError("flag not found")
	ErrIndexOutOfRange        = LengthError("index out of range")
	ErrInvalidBinary          = InvalidError("invalid binary chunk")
	ErrInvalidBoolean         = InvalidError("invalid boolean value")
	ErrInvalidDigest          = InvalidError("invalid digest")
	ErrInvalidDouble          = InvalidError("invalid real value")
	ErrInvalidDrawingName     = InvalidError("invalid drawing name")
	ErrInvalidHandle          = InvalidError("invalid handle")
	ErrInvalidInteger         = InvalidError("invalid integer value")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrInvalidPairValue       = InvalidError("pair value does not match expected kind")
	ErrInvalidRecord          = LengthError("invalid stored record")
	ErrInvalidVersion         = InvalidError("invalid drawing version")
	ErrItemNotFound           = NotFoundError("item not found")
	ErrMinimumCount           = LengthError("pointer collection below minimum count")
	ErrMissingValueLine       = RecordError("group code without value")
	ErrNotAField              = InvalidError("descriptor member is not a field")
	ErrNotATagPair            = RecordError("item does not start with a tag pair")
	ErrNotInitialised         = NotFoundError("not initialised")
	ErrNotScalarField         = InvalidError("field is not a scalar integer field")
	ErrRegistrySealed         = ProcessError("registry is sealed")
	ErrSectionNotTerminated   = RecordError("section not terminated")
	ErrSharedCodeOverflow     = RecordError("more occurrences of a shared code than declared fields")
	ErrTypeOutOfVersionRange  = InvalidError("type not supported by drawing version")
	ErrUnexpectedEndOfFile    = RecordError("unexpected end of file")
	ErrUnsupportedCode        = InvalidError("unsupported group code")
	ErrWrongComponentCount    = LengthError("wrong number of component codes")
	ErrWrongTypeForDescriptor = InvalidError("object does not belong to descriptor")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
