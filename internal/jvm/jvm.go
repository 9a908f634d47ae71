package jvm

import (
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/hashdot/hashdot/internal/logging"
)

// JNI interface version 1.2, the minimum this launcher needs.
const jniVersion12 = 0x00010002

const jniOK = 0

// javaVMOption mirrors the C JavaVMOption layout
type javaVMOption struct {
	optionString *byte
	extraInfo    unsafe.Pointer
}

// javaVMInitArgs mirrors the C JavaVMInitArgs layout
type javaVMInitArgs struct {
	version            int32
	nOptions           int32
	options            *javaVMOption
	ignoreUnrecognized uint8
}

// JNIEnv function table indices (stable since JNI 1.2).
const (
	fnFindClass          = 6
	fnExceptionCheck     = 228
	fnExceptionDescribe  = 16
	fnDeleteLocalRef     = 23
	fnGetStaticMethodID  = 113
	fnCallStaticVoidA    = 143
	fnNewStringUTF       = 167
	fnNewObjectArray     = 172
	fnSetObjectArrayElem = 174
)

// JavaVM invoke interface index.
const fnDestroyJavaVM = 3

// VM is a created Java VM attached to the calling thread
type VM struct {
	vm  uintptr // JavaVM*
	env uintptr // JNIEnv* for the attached thread
}

// Create initializes a VM with the given option strings. The calling
// goroutine is locked to its OS thread for the lifetime of the VM: the
// JNIEnv is thread-bound.
func (l *Library) Create(options []string) (*VM, error) {
	runtime.LockOSThread()

	copts := make([]javaVMOption, len(options))
	hold := make([][]byte, len(options))
	for i, o := range options {
		hold[i] = cstring(o)
		copts[i].optionString = &hold[i][0]
	}

	args := javaVMInitArgs{
		version:            jniVersion12,
		nOptions:           int32(len(copts)),
		ignoreUnrecognized: 0,
	}
	if len(copts) > 0 {
		args.options = &copts[0]
	}

	var vm, env uintptr
	rc, _, _ := purego.SyscallN(l.createVM,
		uintptr(unsafe.Pointer(&vm)),
		uintptr(unsafe.Pointer(&env)),
		uintptr(unsafe.Pointer(&args)))
	runtime.KeepAlive(hold)
	runtime.KeepAlive(copts)

	if int32(rc) != jniOK {
		return nil, &InitError{Code: int32(rc)}
	}
	logging.Debug("VM created", "options", len(options))
	return &VM{vm: vm, env: env}, nil
}

// RunMain resolves class (internal slash-separated form), its static
// main(String[]) method, and invokes it with args. Exceptions thrown by
// the hosted program are described to stderr, not returned.
func (v *VM) RunMain(class string, args []string) error {
	cls := v.findClass(class)
	if cls == 0 {
		v.describeException()
		return &EntryNotFoundError{Kind: EntryClass, Name: class}
	}

	mname := cstring("main")
	msig := cstring("([Ljava/lang/String;)V")
	mid := v.call(fnGetStaticMethodID, cls,
		uintptr(unsafe.Pointer(&mname[0])), uintptr(unsafe.Pointer(&msig[0])))
	runtime.KeepAlive(mname)
	runtime.KeepAlive(msig)
	if mid == 0 {
		v.describeException()
		return &EntryNotFoundError{Kind: EntryMethod, Name: class}
	}

	strCls := v.findClass("java/lang/String")
	if strCls == 0 {
		v.describeException()
		return &EntryNotFoundError{Kind: EntryClass, Name: "java/lang/String"}
	}

	arr := v.call(fnNewObjectArray, uintptr(len(args)), strCls, 0)
	if arr == 0 {
		v.describeException()
		return &InitError{Code: jniErrOutOfMemory}
	}
	for i, a := range args {
		utf := cstring(a)
		js := v.call(fnNewStringUTF, uintptr(unsafe.Pointer(&utf[0])))
		runtime.KeepAlive(utf)
		if js == 0 {
			v.describeException()
			return &InitError{Code: jniErrOutOfMemory}
		}
		v.call(fnSetObjectArrayElem, arr, uintptr(i), js)
		v.call(fnDeleteLocalRef, js)
	}

	// jvalue array with the single String[] argument.
	jargs := []uintptr{arr}
	v.call(fnCallStaticVoidA, cls, mid, uintptr(unsafe.Pointer(&jargs[0])))
	runtime.KeepAlive(jargs)
	v.describeException()
	v.call(fnDeleteLocalRef, arr)
	return nil
}

// Destroy waits for non-daemon threads and tears the VM down
func (v *VM) Destroy() {
	table := *(*uintptr)(unsafe.Pointer(v.vm))
	fn := *(*uintptr)(unsafe.Pointer(table + fnDestroyJavaVM*unsafe.Sizeof(uintptr(0))))
	purego.SyscallN(fn, v.vm)
}

const jniErrOutOfMemory = -4

// call invokes the JNIEnv function at table index fn
func (v *VM) call(fn int, args ...uintptr) uintptr {
	table := *(*uintptr)(unsafe.Pointer(v.env))
	f := *(*uintptr)(unsafe.Pointer(table + uintptr(fn)*unsafe.Sizeof(uintptr(0))))
	all := make([]uintptr, 0, len(args)+1)
	all = append(all, v.env)
	all = append(all, args...)
	r, _, _ := purego.SyscallN(f, all...)
	return r
}

func (v *VM) findClass(name string) uintptr {
	b := cstring(name)
	r := v.call(fnFindClass, uintptr(unsafe.Pointer(&b[0])))
	runtime.KeepAlive(b)
	return r
}

func (v *VM) describeException() {
	if byte(v.call(fnExceptionCheck)) != 0 {
		v.call(fnExceptionDescribe)
	}
}

// cstring returns s as a NUL-terminated byte buffer
func cstring(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}
