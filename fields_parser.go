package cmdline

import (
	"fmt"
	"reflect"
)

// fieldInfo contains info about a struct field that should be registered as an argument
type fieldInfo struct {
	role fieldRole
	// exactly one of handler and callback is set
	handler  ValueHandler
	callback func()
}

// WithStruct registers tagged fields of the struct pointed by `p` as arguments in field order:
//
//	type Options struct {
//		Output  string        `arg:"o" argLong:"output" argRequired:"true" argAllowed:"short,long"`
//		Timeout time.Duration `arg:"t" argPlaceholder:"duration" argUsage:"request timeout"`
//		Debug   bool          `arg:"d" argLong:"debug"`
//		Path    string        `argPos:"true" argRequired:"true"`
//	}
//
// A bool field tagged with "arg" becomes a switch, other "arg" fields become named arguments.
// Fields of embedded structs without tags are registered as well.
// Nothing is registered if any field is invalid.
func (c *Configurator) WithStruct(p any) error {
	structValue, err := getStructPointerElem(p)
	if err != nil {
		return err
	}
	// collect fields info but don't register arguments until all fields are validated
	fieldsInfo, err := collectFieldsInfoRecursive(structValue, "")
	if err != nil {
		return err
	}
	for _, info := range fieldsInfo {
		c.registerField(info)
	}
	return nil
}

func (c *Configurator) registerField(info fieldInfo) {
	role := info.role
	switch {
	case info.callback != nil:
		s := c.WithSwitch(role.name, info.callback)
		for _, alias := range role.longAliases {
			s.HavingLongAlias(alias)
		}
		if role.usage != "" {
			s.DescribedBy(role.usage)
		}
	case role.positional:
		p := c.WithPositional(info.handler)
		if role.required {
			p.Required()
		}
		if role.placeholder != "" || role.usage != "" {
			p.DescribedBy(role.placeholder, role.usage)
		}
	default:
		n := c.WithNamed(role.name, info.handler)
		for _, alias := range role.longAliases {
			n.HavingLongAlias(alias)
		}
		if role.required {
			n.Required()
		}
		if role.allowed != nil {
			n.RestrictedTo(role.allowed...)
		}
		if role.placeholder != "" || role.usage != "" {
			n.DescribedBy(role.placeholder, role.usage)
		}
	}
}

// collectFieldsInfoRecursive collects info about all tagged fields of the given struct including
// embedded structs. It validates the types of the fields and their tags.
func collectFieldsInfoRecursive(structValue reflect.Value, parentFieldName string) (res []fieldInfo, err error) {
	sValType := structValue.Type()
	for i := 0; i < structValue.NumField(); i++ {
		field := sValType.Field(i)
		fieldValue := structValue.Field(i)
		fieldName := getFieldName(parentFieldName, field.Name)

		role, err := getFieldRole(field)
		if err != nil {
			return nil, fmt.Errorf(`field "%s": %w`, fieldName, err)
		}
		if role == nil {
			if field.Anonymous && field.Type.Kind() == reflect.Struct {
				nested, err := collectFieldsInfoRecursive(fieldValue, fieldName)
				if err != nil {
					return nil, err
				}
				res = append(res, nested...)
			}
			continue
		}
		if !field.IsExported() {
			return nil, fmt.Errorf(`field "%s" tagged with "%s": not exported`, fieldName, role.getRoleTagName())
		}

		info, err := collectFieldInfo(fieldValue, *role)
		if err != nil {
			return nil, fmt.Errorf(`field "%s" tagged with "%s": %w`, fieldName, role.getRoleTagName(), err)
		}
		res = append(res, info)
	}
	return res, nil
}

func collectFieldInfo(fieldValue reflect.Value, role fieldRole) (fieldInfo, error) {
	info := fieldInfo{role: role}
	if !role.positional && isSwitchField(fieldValue.Type()) {
		if role.required {
			return fieldInfo{}, fmt.Errorf(`"%s" tag can't be used with switches`, argRequiredTag)
		}
		if role.allowed != nil {
			return fieldInfo{}, fmt.Errorf(`"%s" tag can't be used with switches`, argAllowedTag)
		}
		info.callback = getSwitchCallback(fieldValue)
		return info, nil
	}

	handler, err := getFieldValueHandler(fieldValue)
	if err != nil {
		return fieldInfo{}, err
	}
	info.handler = handler
	return info, nil
}

func getStructPointerElem(p any) (res reflect.Value, err error) {
	val := reflect.ValueOf(p)
	if val.Kind() != reflect.Pointer || val.IsNil() {
		return reflect.Value{}, fmt.Errorf("expected pointer to struct, got %T", p)
	}
	res = val.Elem()
	if res.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("expected pointer to struct, got %T", p)
	}
	return res, nil
}

func getFieldName(parentFieldName, fieldName string) string {
	if parentFieldName == "" {
		return fieldName
	}
	return fmt.Sprintf("%s.%s", parentFieldName, fieldName)
}
