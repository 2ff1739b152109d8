package cmdline

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

const (
	argNameTag        = "arg"
	argPositionalTag  = "argPos"
	argLongTag        = "argLong"
	argRequiredTag    = "argRequired"
	argAllowedTag     = "argAllowed"
	argPlaceholderTag = "argPlaceholder"
	argUsageTag       = "argUsage"
)

// fieldRole describes how a struct field is registered
type fieldRole struct {
	// empty for positional
	name        string
	positional  bool
	longAliases []string
	required    bool
	// nil if not restricted
	allowed     []string
	placeholder string
	usage       string
}

func (r fieldRole) getRoleTagName() string {
	if r.positional {
		return argPositionalTag
	}
	return argNameTag
}

// getFieldRole returns nil role for fields without "arg" and "argPos" tags
func getFieldRole(field reflect.StructField) (*fieldRole, error) {
	tags := field.Tag

	name := tags.Get(argNameTag)
	if name == "-" {
		name = ""
	}
	positional, _, err := getBoolTag(tags, argPositionalTag)
	if err != nil {
		return nil, err
	}
	required, hasRequired, err := getBoolTag(tags, argRequiredTag)
	if err != nil {
		return nil, err
	}
	longAliases := getTagList(tags, argLongTag)
	allowed, hasAllowed := lookupTagList(tags, argAllowedTag)
	placeholder, hasPlaceholder := tags.Lookup(argPlaceholderTag)
	usage, hasUsage := tags.Lookup(argUsageTag)

	hasName := name != ""
	switch trueCount(hasName, positional) {
	case 0:
		for tagName, hasTag := range map[string]bool{
			argLongTag:        len(longAliases) > 0,
			argRequiredTag:    hasRequired,
			argAllowedTag:     hasAllowed,
			argPlaceholderTag: hasPlaceholder,
			argUsageTag:       hasUsage,
		} {
			if hasTag {
				return nil, fmt.Errorf(
					`"%s" tag can be used only with "%s" or "%s" tags`,
					tagName, argNameTag, argPositionalTag,
				)
			}
		}
		return nil, nil
	case 2:
		return nil, fmt.Errorf(`only one of "%s", "%s" tags can be used`, argNameTag, argPositionalTag)
	}

	if positional {
		for tagName, hasTag := range map[string]bool{
			argLongTag:    len(longAliases) > 0,
			argAllowedTag: hasAllowed,
		} {
			if hasTag {
				return nil, fmt.Errorf(`"%s" tag can't be used with "%s" tag`, tagName, argPositionalTag)
			}
		}
	}

	return &fieldRole{
		name:        name,
		positional:  positional,
		longAliases: longAliases,
		required:    required,
		allowed:     allowed,
		placeholder: placeholder,
		usage:       usage,
	}, nil
}

func getBoolTag(tags reflect.StructTag, tagName string) (val bool, exists bool, err error) {
	var strVal string
	if strVal, exists = tags.Lookup(tagName); strVal != "" {
		if val, err = strconv.ParseBool(strVal); err != nil {
			return false, exists,
				fmt.Errorf(`invalid "%s" tag bool value: "%s"`, tagName, strVal)
		}
	}
	return val, exists, nil
}

func getTagList(tags reflect.StructTag, tagName string) []string {
	list, _ := lookupTagList(tags, tagName)
	return list
}

// lookupTagList splits a comma separated tag value. Empty items are dropped,
// so an existing empty tag gives an empty non-nil list.
func lookupTagList(tags reflect.StructTag, tagName string) (list []string, exists bool) {
	str, exists := tags.Lookup(tagName)
	if !exists {
		return nil, false
	}
	list = []string{}
	for _, item := range strings.Split(str, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list, true
}

func trueCount(values ...bool) (res int) {
	for _, v := range values {
		if v {
			res++
		}
	}
	return res
}
