// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type BalanceError GenericError
type CryptoError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccessDenied            = PermissionError("access denied")
	ErrAlreadyInitialised      = ProcessError("already initialised")
	ErrBalanceOverflow         = BalanceError("balance overflow")
	ErrCertificateFileExists   = ExistsError("certificate file already exists")
	ErrContentTooLong          = InvalidError("content too long")
	ErrDatabaseIsNotSet        = ProcessError("database is not set")
	ErrDecryptionFailed        = CryptoError("decryption failed")
	ErrDocumentNotFound        = NotFoundError("document not found")
	ErrEncryptionFailed        = CryptoError("encryption failed")
	ErrInsufficientBalance     = BalanceError("insufficient token balance")
	ErrInvalidAction           = InvalidError("invalid action")
	ErrInvalidAmount           = InvalidError("invalid token amount")
	ErrInvalidCount            = InvalidError("invalid count")
	ErrInvalidIndexKind        = InvalidError("invalid index kind")
	ErrInvalidIPAddress        = InvalidError("invalid IP address")
	ErrInvalidKeyHandle        = InvalidError("invalid key handle")
	ErrInvalidKeyLength        = InvalidError("invalid key length")
	ErrInvalidResourceId       = InvalidError("invalid resource id")
	ErrInvalidRights           = InvalidError("invalid rights")
	ErrInvalidStructPointer    = InvalidError("invalid struct pointer")
	ErrInvalidTimeToLive       = InvalidError("invalid time to live")
	ErrInvalidToken            = InvalidError("invalid access token")
	ErrInvalidUser             = InvalidError("invalid user")
	ErrKeyFileExists           = ExistsError("key file already exists")
	ErrKeyHandleNotFound       = NotFoundError("key handle not found")
	ErrMissingParameters       = InvalidError("missing parameters")
	ErrNameTooLong             = InvalidError("name too long")
	ErrNotADocument            = InvalidError("resource is not a document")
	ErrNotEncrypted            = InvalidError("resource is not encrypted")
	ErrNotInitialised          = ProcessError("not initialised")
	ErrNotOwner                = PermissionError("not the resource owner")
	ErrNotPackedResource       = InvalidError("not a packed resource")
	ErrNotTokenHolder          = PermissionError("not the access token holder")
	ErrRateLimiting            = ProcessError("rate limiting")
	ErrResourceExists          = ExistsError("resource already exists")
	ErrResourceNotFound        = NotFoundError("resource not found")
	ErrSealNotFound            = NotFoundError("sealed content not found")
	ErrTokenExpired            = PermissionError("access token expired")
	ErrTokenNotFound           = NotFoundError("access token not found")
	ErrTransactionInUse        = ProcessError("transaction already in use")
	ErrTransactionNotStarted   = ProcessError("transaction not started")
	ErrUnsupportedAlgorithm    = CryptoError("unsupported cipher algorithm")
	ErrWrongDigestLength       = InvalidError("wrong digest length")
	ErrYearOutOfRange          = InvalidError("year out of range")
	ErrZeroLengthContent       = InvalidError("content is empty")
	ErrZeroLengthResourceTitle = InvalidError("document title is empty")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e BalanceError) Error() string    { return string(e) }
func (e CryptoError) Error() string     { return string(e) }
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// determine the class of an error
func IsErrBalance(e error) bool    { _, ok := e.(BalanceError); return ok }
func IsErrCrypto(e error) bool     { _, ok := e.(CryptoError); return ok }
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
